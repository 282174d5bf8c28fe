package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s in an attack/release volume ramp over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples && e.releaseSamples > 0 {
			vol = float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer; math.Log2(0) is -Inf, so zero goes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shorthand for an enveloped oscillator note.
func tone(freq float64, wave WaveType, duration time.Duration, rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	shaped := NewEnvelope(osc, duration, 2*time.Millisecond, duration/3, rate)
	return newVolume(shaped, vol)
}

// MoveSound is a soft low tick for horizontal shifts.
func MoveSound(rate beep.SampleRate) beep.Streamer {
	return tone(220.0, WaveSine, 30*time.Millisecond, rate, 0.25)
}

// RotateSound is a brighter blip than the move tick.
func RotateSound(rate beep.SampleRate) beep.Streamer {
	return tone(440.0, WaveSquare, 40*time.Millisecond, rate, 0.2)
}

// LockSound is a dull thud for a piece settling into the well.
func LockSound(rate beep.SampleRate) beep.Streamer {
	return tone(110.0, WaveSaw, 90*time.Millisecond, rate, 0.35)
}

// ClearSound is a rising arpeggio, one note per cleared row.
func ClearSound(rows int, rate beep.SampleRate) beep.Streamer {
	if rows < 1 {
		rows = 1
	}
	if rows > 4 {
		rows = 4
	}
	notes := make([]beep.Streamer, rows)
	freq := 523.25 // C5
	for i := range notes {
		notes[i] = tone(freq, WaveSquare, 80*time.Millisecond, rate, 0.3)
		freq *= 1.25992 // up a major third in equal temperament
	}
	return beep.Seq(notes...)
}

// GameOverSound is a slow descending line.
func GameOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(392.00, WaveSaw, 180*time.Millisecond, rate, 0.3),
		tone(329.63, WaveSaw, 180*time.Millisecond, rate, 0.3),
		tone(261.63, WaveSaw, 320*time.Millisecond, rate, 0.3),
	)
}
