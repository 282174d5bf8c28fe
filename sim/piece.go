package sim

type pieceState uint8

const (
	pieceFalling pieceState = iota
	pieceGrounded
	pieceSettled
)

// Piece is the one active falling piece: kind, origin, rotation state, the
// current four offsets (rotation and kicks already applied), the block
// identities it will hand to the grid, and the lock-delay sub-state that only
// exists while the piece is grounded.
//
// The lock epoch is consumed by grounded player actions, not by time spent
// grounded: each successful move or rotation while grounded costs one reset
// whether or not it frees the piece, so settlement cannot be postponed
// indefinitely by repeated taps.
type Piece struct {
	kind    Kind
	origin  Cell
	rot     int
	offsets [PieceBlocks]Offset
	blocks  [PieceBlocks]BlockID

	state       pieceState
	lockTimer   float64
	epochActive bool
	resetsLeft  int
	cooldown    float64
}

func newPiece(kind Kind, origin Cell, blocks [PieceBlocks]BlockID) *Piece {
	return &Piece{
		kind:    kind,
		origin:  origin,
		offsets: kind.BaseOffsets(),
		blocks:  blocks,
	}
}

// Kind returns the piece's shape kind.
func (p *Piece) Kind() Kind { return p.kind }

// Origin returns the piece's current origin cell.
func (p *Piece) Origin() Cell { return p.origin }

// Rotation returns the current rotation state, 0 through 3.
func (p *Piece) Rotation() int { return p.rot }

// Grounded reports whether the piece is blocked from moving down and counting
// toward settlement.
func (p *Piece) Grounded() bool { return p.state == pieceGrounded }

// Cells returns the four grid cells the piece currently covers.
func (p *Piece) Cells() [PieceBlocks]Cell {
	return cellsAt(p.origin, p.offsets)
}

// tryMove attempts to shift the piece by (dx, dy). Player-initiated moves pass
// countsForLockReset so grounded lock accounting applies; gravity and
// soft-drop steps never do.
func (p *Piece) tryMove(g *Grid, dx, dy int, countsForLockReset bool) bool {
	if p.state == pieceSettled {
		return false
	}
	target := Cell{p.origin.X + dx, p.origin.Y + dy}
	if !g.IsValidPlacement(cellsAt(target, p.offsets)) {
		return false
	}
	wasGrounded := p.state == pieceGrounded
	p.origin = target
	if countsForLockReset && wasGrounded {
		p.consumeLockReset()
		p.refreshGrounded(g)
	}
	return true
}

// tryRotate attempts a 90-degree rotation, walking the kind's kick table until
// a trial position fits. dir is +1 for clockwise, -1 for counter-clockwise.
// O pieces are rejected before the kick search; their rotated shape is
// geometrically identical.
func (p *Piece) tryRotate(g *Grid, cfg Config, dir int) bool {
	if p.state == pieceSettled || p.kind == KindO {
		return false
	}
	if p.cooldown > 0 {
		return false
	}
	rotated := rotateOffsets(p.offsets, dir > 0)
	for _, kick := range p.kind.kicks() {
		origin := Cell{p.origin.X + kick.X, p.origin.Y + kick.Y}
		if !g.IsValidPlacement(cellsAt(origin, rotated)) {
			continue
		}
		wasGrounded := p.state == pieceGrounded
		p.origin = origin
		p.offsets = rotated
		p.rot = (p.rot + dir + 4) % 4
		p.cooldown = cfg.RotateCooldown
		if wasGrounded {
			p.consumeLockReset()
			p.refreshGrounded(g)
		}
		return true
	}
	return false
}

// gravityStep attempts one downward step. A rejected step grounds the piece:
// the lock epoch is initialized on first grounding and the countdown starts.
// The reset budget is never touched here.
func (p *Piece) gravityStep(g *Grid, cfg Config) bool {
	if p.state == pieceSettled {
		return false
	}
	if p.tryMove(g, 0, -1, false) {
		if p.state == pieceGrounded {
			p.state = pieceFalling
			p.lockTimer = 0
		}
		return true
	}
	p.ground(cfg)
	return false
}

// ground enters the grounded countdown. The epoch survives intermediate
// grounded/falling transitions and is only cleared at settlement, so a
// re-grounded piece keeps whatever budget it has left.
func (p *Piece) ground(cfg Config) {
	if p.state != pieceFalling {
		return
	}
	p.state = pieceGrounded
	p.lockTimer = 0
	if !p.epochActive {
		p.epochActive = true
		p.resetsLeft = cfg.MaxLockResets
	}
}

// consumeLockReset spends one reset and restarts the countdown. With the
// budget exhausted the running countdown is left alone; no further extensions
// are granted.
func (p *Piece) consumeLockReset() {
	if p.resetsLeft <= 0 {
		return
	}
	p.resetsLeft--
	p.lockTimer = 0
}

// refreshGrounded returns the piece to falling when a player action has freed
// it. The countdown is cancelled; the remaining reset budget is preserved.
func (p *Piece) refreshGrounded(g *Grid) {
	if p.state != pieceGrounded {
		return
	}
	below := Cell{p.origin.X, p.origin.Y - 1}
	if g.IsValidPlacement(cellsAt(below, p.offsets)) {
		p.state = pieceFalling
		p.lockTimer = 0
	}
}

// tickTimers advances the rotation cooldown and, while grounded, the lock
// countdown. Returns true when the countdown has elapsed.
func (p *Piece) tickTimers(dt float64, cfg Config) bool {
	if p.cooldown > 0 {
		p.cooldown -= dt
	}
	if p.state != pieceGrounded {
		return false
	}
	p.lockTimer += dt
	return p.lockTimer >= cfg.LockDelay
}

// settle marks the piece settled and returns its placements for the grid.
// A second call returns nil, so double settlement cannot double-commit.
func (p *Piece) settle() []Placement {
	if p.state == pieceSettled {
		return nil
	}
	p.state = pieceSettled
	p.epochActive = false
	p.resetsLeft = 0
	cells := p.Cells()
	placements := make([]Placement, PieceBlocks)
	for i := range cells {
		placements[i] = Placement{Cell: cells[i], Block: p.blocks[i]}
	}
	return placements
}
