package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v, want 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorExhausts(t *testing.T) {
	rate := beep.SampleRate(44100)
	want := rate.N(30 * time.Millisecond)

	got := drain(NewOscillator(220.0, 30*time.Millisecond, WaveSquare, rate))
	if got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
}

func TestEnvelopeRampsDown(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	osc := NewOscillator(0, duration, WaveSquare, rate) // constant 1.0
	env := NewEnvelope(osc, duration, 0, duration, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n < 2 {
		t.Fatalf("streamed only %d samples", n)
	}
	if samples[0][0] < samples[n-1][0] {
		t.Errorf("release ramp should decay: first=%f last=%f", samples[0][0], samples[n-1][0])
	}
	if samples[n-1][0] > 0.01 {
		t.Errorf("end of release should be near silent, got %f", samples[n-1][0])
	}
}

func TestClearSoundScalesWithRows(t *testing.T) {
	rate := beep.SampleRate(44100)

	one := drain(ClearSound(1, rate))
	four := drain(ClearSound(4, rate))
	if four <= one {
		t.Errorf("four-row clear should be longer: 1 row=%d samples, 4 rows=%d", one, four)
	}

	if drain(ClearSound(0, rate)) != one {
		t.Error("out-of-range row counts should clamp")
	}
	if drain(ClearSound(9, rate)) != four {
		t.Error("out-of-range row counts should clamp")
	}
}

func TestGameOverSoundProducesAudio(t *testing.T) {
	rate := beep.SampleRate(44100)
	if drain(GameOverSound(rate)) == 0 {
		t.Error("expected a non-empty stream")
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	// No speaker; these must be no-ops rather than panics.
	p.Move()
	p.Rotate()
	p.Lock()
	p.RowsCleared(4)
	p.GameOver()
}
