package sim

// EventSink receives the engine's observable gameplay events. Scoring policy
// and presentation are external; ScoreForRows is the conventional mapping.
type EventSink interface {
	RowsCleared(count int)
	GameOver()
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RowsCleared(int) {}

func (NopSink) GameOver() {}

// CoordinateMapper converts a grid cell to a world-space position for visual
// placement. It has no bearing on simulation and may be a no-op in headless
// harnesses.
type CoordinateMapper interface {
	CellToWorld(c Cell) (x, y float64)
}

// ScoreForRows maps a simultaneous clear count to points: 10, 30, 50 and 100
// for one through four rows, 10n beyond that.
func ScoreForRows(n int) int {
	switch n {
	case 1:
		return 10
	case 2:
		return 30
	case 3:
		return 50
	case 4:
		return 100
	}
	if n > 4 {
		return 10 * n
	}
	return 0
}
