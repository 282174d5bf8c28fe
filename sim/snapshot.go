package sim

// PieceSnapshot describes the active piece at snapshot time.
type PieceSnapshot struct {
	Kind     Kind
	Origin   Cell
	Rotation int
	Cells    [PieceBlocks]Cell
	Blocks   [PieceBlocks]BlockID
	Grounded bool
}

// Snapshot is a primitive copy of the engine's observable state. Renderers
// and tests read it instead of reaching into the engine, and may hold it
// across ticks.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int

	// Blocks are the settled placements, bottom row first.
	Blocks []Placement

	// Active is nil between settlement and the next spawn.
	Active *PieceSnapshot

	// Clearing lists rows awaiting removal during the pre-clear pause,
	// for renderers that flash them.
	Clearing []int

	GameOver bool
}

// Snapshot captures the current observable state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     e.ticks,
		Width:    e.cfg.Width,
		Height:   e.cfg.Height,
		Blocks:   e.grid.Blocks(),
		GameOver: e.phase == phaseOver,
	}
	if e.piece != nil {
		snap.Active = &PieceSnapshot{
			Kind:     e.piece.kind,
			Origin:   e.piece.origin,
			Rotation: e.piece.rot,
			Cells:    e.piece.Cells(),
			Blocks:   e.piece.blocks,
			Grounded: e.piece.state == pieceGrounded,
		}
	}
	if e.seq.phase == seqPreClear {
		snap.Clearing = append([]int(nil), e.seq.rows...)
	}
	return snap
}
