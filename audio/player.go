// Package audio synthesizes the game's sound effects with beep. Everything is
// generated procedurally; there are no sample assets to load.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and mixes one-shot effects into it. The zero value
// is usable and silent until Init succeeds, so frontends can run without a
// working audio device. Player satisfies the simulation's event sink, covering
// row clears and game over; movement sounds are triggered by the frontend's
// input layer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Move plays the horizontal-shift tick.
func (p *Player) Move() { p.play(MoveSound(sampleRate)) }

// Rotate plays the rotation blip.
func (p *Player) Rotate() { p.play(RotateSound(sampleRate)) }

// Lock plays the settle thud.
func (p *Player) Lock() { p.play(LockSound(sampleRate)) }

// RowsCleared plays the clear arpeggio, scaled to the number of rows.
func (p *Player) RowsCleared(rows int) { p.play(ClearSound(rows, sampleRate)) }

// GameOver plays the descending end-of-game line.
func (p *Player) GameOver() { p.play(GameOverSound(sampleRate)) }
