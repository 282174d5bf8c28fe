package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/sim"
)

// Session is the singleton tying the ECS world to the simulation. The engine
// owns all game rules; the session carries everything presentational that
// accumulates around it.
type Session struct {
	Engine *sim.Engine
	Events *eventBuffer
	Sounds *audio.Player

	Score  int
	Lines  int
	Colors map[sim.BlockID]rl.Color
}

// Popup is a floating score label spawned on row clears.
type Popup struct {
	Text string
	X, Y float64
	Age  float64
}

// eventBuffer collects simulation events raised during a Tick so systems can
// act on them afterwards with the frame in hand.
type eventBuffer struct {
	cleared []int
	over    bool
}

func (b *eventBuffer) RowsCleared(rows int) { b.cleared = append(b.cleared, rows) }

func (b *eventBuffer) GameOver() { b.over = true }

func (b *eventBuffer) drain() (cleared []int, over bool) {
	cleared, over = b.cleared, b.over
	b.cleared = nil
	b.over = false
	return cleared, over
}
