package sim

// Action identifies a player input.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionSoftDrop
	ActionRotateCW
	ActionRotateCCW
	ActionHardDrop

	actionCount
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotateCW:
		return "rotate-cw"
	case ActionRotateCCW:
		return "rotate-ccw"
	case ActionHardDrop:
		return "hard-drop"
	}
	return "unknown"
}

// autorepeat is the DAS/ARR timer pair for one held direction. The immediate
// press move is handled separately by the engine; this only produces the
// delayed steady repeats while the key stays held.
type autorepeat struct {
	held   bool
	hold   float64
	repeat float64
}

func (r *autorepeat) press() {
	r.held = true
	r.hold = 0
	r.repeat = 0
}

func (r *autorepeat) release() {
	r.held = false
	r.hold = 0
	r.repeat = 0
}

// tick advances the timers by dt and reports whether a repeat move fires. The
// repeat timer only accumulates once the hold timer has exceeded the delay,
// and resets to zero each time it exceeds the rate.
func (r *autorepeat) tick(dt, delay, rate float64) bool {
	if !r.held {
		return false
	}
	r.hold += dt
	if r.hold <= delay {
		return false
	}
	r.repeat += dt
	if r.repeat <= rate {
		return false
	}
	r.repeat = 0
	return true
}
