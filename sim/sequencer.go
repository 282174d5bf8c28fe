package sim

type seqPhase uint8

const (
	seqIdle seqPhase = iota
	seqPreClear
	seqPostClear
)

type seqEvent uint8

const (
	seqNone seqEvent = iota
	seqClear
	seqSpawn
)

// sequencer times the "pause, clear, pause, resume" choreography between a
// piece settling with full rows and the next piece spawning. It owns no grid
// logic; the engine performs the clear and the spawn when the corresponding
// step fires.
type sequencer struct {
	phase seqPhase
	timer float64
	rows  []int
}

// begin arms the sequencer for a non-empty row set.
func (s *sequencer) begin(rows []int) {
	s.phase = seqPreClear
	s.timer = 0
	s.rows = rows
}

// tick advances the active pause and reports the step that fired: seqClear
// once the pre-clear pause elapses, seqSpawn once the post-clear pause does.
func (s *sequencer) tick(dt, preDelay, postDelay float64) seqEvent {
	switch s.phase {
	case seqPreClear:
		s.timer += dt
		if s.timer < preDelay {
			return seqNone
		}
		s.phase = seqPostClear
		s.timer = 0
		return seqClear
	case seqPostClear:
		s.timer += dt
		if s.timer < postDelay {
			return seqNone
		}
		s.phase = seqIdle
		s.timer = 0
		return seqSpawn
	}
	return seqNone
}

// cancel abandons any pending wait without side effects.
func (s *sequencer) cancel() {
	s.phase = seqIdle
	s.timer = 0
	s.rows = nil
}
