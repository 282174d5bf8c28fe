package sim

import "fmt"

// Config holds the grid dimensions and every timing constant of the engine.
// All durations are in seconds, advanced by Engine.Tick.
type Config struct {
	Width  int
	Height int

	// FallInterval is the seconds between gravity steps; SoftDropInterval
	// replaces it outright while the soft-drop key is held.
	FallInterval     float64
	SoftDropInterval float64

	// LockDelay is the grace period after grounding before a piece settles.
	// MaxLockResets bounds how many grounded player actions may restart it.
	LockDelay     float64
	MaxLockResets int

	// RotateCooldown debounces repeated rotation inputs.
	RotateCooldown float64

	// AutorepeatDelay (DAS) and AutorepeatRate (ARR) shape held horizontal
	// input: instant move on press, then steady repeats after the delay.
	AutorepeatDelay float64
	AutorepeatRate  float64

	// PreClearDelay and PostClearDelay are the pauses around a row clear.
	PreClearDelay  float64
	PostClearDelay float64
}

// DefaultConfig returns the standard playfield and timing constants.
func DefaultConfig() Config {
	return Config{
		Width:            10,
		Height:           22,
		FallInterval:     0.8,
		SoftDropInterval: 0.05,
		LockDelay:        0.5,
		MaxLockResets:    8,
		RotateCooldown:   0.1,
		AutorepeatDelay:  0.2,
		AutorepeatRate:   0.05,
		PreClearDelay:    0.2,
		PostClearDelay:   0.1,
	}
}

// Validate reports the first invalid field, if any.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("blockfall: grid dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("blockfall: fall interval %v must be positive", c.FallInterval)
	}
	if c.SoftDropInterval <= 0 {
		return fmt.Errorf("blockfall: soft-drop interval %v must be positive", c.SoftDropInterval)
	}
	if c.LockDelay <= 0 {
		return fmt.Errorf("blockfall: lock delay %v must be positive", c.LockDelay)
	}
	if c.MaxLockResets < 0 {
		return fmt.Errorf("blockfall: lock reset budget %d must not be negative", c.MaxLockResets)
	}
	if c.RotateCooldown < 0 {
		return fmt.Errorf("blockfall: rotate cooldown %v must not be negative", c.RotateCooldown)
	}
	if c.AutorepeatDelay < 0 || c.AutorepeatRate <= 0 {
		return fmt.Errorf("blockfall: autorepeat delay %v / rate %v invalid", c.AutorepeatDelay, c.AutorepeatRate)
	}
	if c.PreClearDelay < 0 || c.PostClearDelay < 0 {
		return fmt.Errorf("blockfall: clear delays %v / %v must not be negative", c.PreClearDelay, c.PostClearDelay)
	}
	return nil
}
