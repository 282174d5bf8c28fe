// Package sim implements a deterministic falling-block puzzle engine: the
// occupancy grid, the shape catalog, the active-piece state machine with
// gravity, autorepeat and bounded lock-delay resets, and the timed row-clear
// sequence. Everything is advanced by explicit Tick calls, so the engine runs
// headless and reproducibly; rendering, audio and piece-selection policy sit
// behind the Spawner, BlockPool, EventSink and CoordinateMapper interfaces.
package sim

// Deps are the collaborators an Engine needs wired before simulation starts.
// Pool and Spawner are required; a nil Events falls back to NopSink.
type Deps struct {
	Pool    BlockPool
	Spawner Spawner
	Events  EventSink
}

type enginePhase uint8

const (
	phasePlaying enginePhase = iota
	phaseClearing
	phaseOver
)

// Engine is the simulation context. It owns the grid and the active piece,
// holds the external collaborators, and advances the whole game from a single
// Tick. All methods must be called from one goroutine.
type Engine struct {
	cfg     Config
	grid    *Grid
	pool    BlockPool
	spawner Spawner
	events  EventSink

	phase enginePhase
	piece *Piece
	seq   sequencer
	ticks uint64

	gravityAcc  float64
	left, right autorepeat
	softDrop    bool
	pressed     [actionCount]bool
}

// New wires an engine and spawns the first piece. An invalid configuration or
// a missing pool or spawner is a startup fault and panics; nothing here is
// recoverable per-tick.
func New(cfg Config, deps Deps) *Engine {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	if deps.Pool == nil {
		panic("blockfall: engine requires a block pool")
	}
	if deps.Spawner == nil {
		panic("blockfall: engine requires a spawner")
	}
	events := deps.Events
	if events == nil {
		events = NopSink{}
	}
	e := &Engine{
		cfg:     cfg,
		grid:    NewGrid(cfg.Width, cfg.Height),
		pool:    deps.Pool,
		spawner: deps.Spawner,
		events:  events,
	}
	e.spawn()
	return e
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.phase == phaseOver }

// KeyDown records a key-down edge and, for directional keys, held state for
// autorepeat. The edge is resolved at the start of the next Tick.
func (e *Engine) KeyDown(a Action) {
	switch a {
	case ActionLeft:
		e.left.press()
	case ActionRight:
		e.right.press()
	case ActionSoftDrop:
		e.softDrop = true
	}
	if a < actionCount {
		e.pressed[a] = true
	}
}

// KeyUp clears held state for a.
func (e *Engine) KeyUp(a Action) {
	switch a {
	case ActionLeft:
		e.left.release()
	case ActionRight:
		e.right.release()
	case ActionSoftDrop:
		e.softDrop = false
	}
}

// Tap is a key-down immediately followed by key-up, for input sources that
// cannot observe key releases; terminal frontends lean on OS key repeat
// instead of the engine's autorepeat.
func (e *Engine) Tap(a Action) {
	e.KeyDown(a)
	e.KeyUp(a)
}

// Tick advances the simulation by dt seconds. Within one tick input is
// resolved before gravity and the lock countdown, so a player action can
// cancel a lock that would otherwise complete this same tick.
func (e *Engine) Tick(dt float64) {
	e.ticks++
	switch e.phase {
	case phaseOver:
		e.dropPresses()
		return
	case phaseClearing:
		e.dropPresses()
		e.stepSequencer(dt)
		return
	}

	prev := e.piece
	e.handleInput(dt)
	if e.phase != phasePlaying || e.piece != prev {
		return
	}
	e.stepGravity(dt)
	if e.phase != phasePlaying || e.piece != prev {
		return
	}
	if e.piece.tickTimers(dt, e.cfg) {
		e.settlePiece()
	}
}

// Reset empties the grid, releases every outstanding block identity, abandons
// any pending countdown or clear wait, and starts over with a fresh piece.
func (e *Engine) Reset() {
	for _, id := range e.grid.Reset() {
		e.pool.Release(id)
	}
	if e.piece != nil {
		for _, id := range e.piece.blocks {
			e.pool.Release(id)
		}
		e.piece = nil
	}
	e.seq.cancel()
	e.dropPresses()
	e.left = autorepeat{}
	e.right = autorepeat{}
	e.softDrop = false
	e.gravityAcc = 0
	e.phase = phasePlaying
	e.spawn()
}

func (e *Engine) takePress(a Action) bool {
	v := e.pressed[a]
	e.pressed[a] = false
	return v
}

func (e *Engine) dropPresses() {
	e.pressed = [actionCount]bool{}
}

func (e *Engine) handleInput(dt float64) {
	p := e.piece

	if e.takePress(ActionLeft) {
		p.tryMove(e.grid, -1, 0, true)
	}
	if e.takePress(ActionRight) {
		p.tryMove(e.grid, 1, 0, true)
	}
	if e.takePress(ActionRotateCW) {
		p.tryRotate(e.grid, e.cfg, 1)
	}
	if e.takePress(ActionRotateCCW) {
		p.tryRotate(e.grid, e.cfg, -1)
	}
	if e.takePress(ActionSoftDrop) {
		// Tapping down on a grounded piece is a drop-into-lock shortcut.
		if p.state == pieceGrounded {
			e.settlePiece()
			return
		}
		p.gravityStep(e.grid, e.cfg)
	}
	if e.takePress(ActionHardDrop) {
		for p.tryMove(e.grid, 0, -1, false) {
		}
		p.ground(e.cfg)
		e.settlePiece()
		return
	}

	if e.left.tick(dt, e.cfg.AutorepeatDelay, e.cfg.AutorepeatRate) {
		p.tryMove(e.grid, -1, 0, true)
	}
	if e.right.tick(dt, e.cfg.AutorepeatDelay, e.cfg.AutorepeatRate) {
		p.tryMove(e.grid, 1, 0, true)
	}
}

// stepGravity advances the fall accumulator. While the soft-drop key is held
// the gravity interval is replaced by the soft-drop interval outright.
func (e *Engine) stepGravity(dt float64) {
	interval := e.cfg.FallInterval
	if e.softDrop {
		interval = e.cfg.SoftDropInterval
	}
	e.gravityAcc += dt
	for e.gravityAcc >= interval {
		e.gravityAcc -= interval
		if !e.piece.gravityStep(e.grid, e.cfg) {
			e.gravityAcc = 0
			break
		}
	}
}

// settlePiece commits the active piece's cells and either spawns the next
// piece immediately or arms the clear sequencer. Game-over is evaluated after
// clearing, never before, since a clear can make the grid non-terminal.
func (e *Engine) settlePiece() {
	placements := e.piece.settle()
	if placements == nil {
		return
	}
	committed := e.grid.Commit(placements)
	if len(committed) < len(placements) {
		// Commit drops clamped cells that collide in the top row; their
		// identities are in neither grid nor piece, so release them here.
		kept := make(map[BlockID]bool, len(committed))
		for _, p := range committed {
			kept[p.Block] = true
		}
		for _, p := range placements {
			if !kept[p.Block] {
				e.pool.Release(p.Block)
			}
		}
	}
	e.piece = nil
	e.gravityAcc = 0

	rows := e.grid.FullRows()
	if len(rows) == 0 {
		e.finishSettlement()
		return
	}
	e.phase = phaseClearing
	e.seq.begin(rows)
}

func (e *Engine) stepSequencer(dt float64) {
	switch e.seq.tick(dt, e.cfg.PreClearDelay, e.cfg.PostClearDelay) {
	case seqClear:
		removed := e.grid.ClearRows(e.seq.rows)
		for _, id := range removed {
			e.pool.Release(id)
		}
		e.events.RowsCleared(len(e.seq.rows))
	case seqSpawn:
		e.seq.cancel()
		e.finishSettlement()
	}
}

// finishSettlement re-checks game-over and spawns the next piece.
func (e *Engine) finishSettlement() {
	if e.grid.IsGameOver() {
		e.phase = phaseOver
		e.events.GameOver()
		return
	}
	e.phase = phasePlaying
	e.spawn()
}

func (e *Engine) spawn() {
	kind, origin := e.spawner.Next()
	var blocks [PieceBlocks]BlockID
	for i := range blocks {
		blocks[i] = e.pool.Acquire()
	}
	e.piece = newPiece(kind, origin, blocks)
}
