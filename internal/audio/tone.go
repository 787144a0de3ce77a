// Package audio plays short cue sounds through the system speaker.
// Sounds come from WAV files named by the theme, or from a built-in
// synthesizer when a theme leaves a cue empty.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sampleRate is the speaker rate; decoded files are resampled to it.
const sampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// ramp is the attack and release length applied to every tone.
const ramp = 5 * time.Millisecond

// Note is one synthesized tone.
type Note struct {
	Freq float64
	Dur  time.Duration
	Wave Wave
}

// tone generates a finite enveloped wave.
type tone struct {
	freq  float64
	phase float64
	pos   int
	total int
	edge  int
	wave  Wave
	rate  beep.SampleRate
}

// NewTone returns a streamer that plays n once and then drains.
func NewTone(n Note, rate beep.SampleRate) beep.Streamer {
	total := rate.N(n.Dur)
	return &tone{
		freq:  n.Freq,
		total: total,
		edge:  min(rate.N(ramp), total/2),
		wave:  n.Wave,
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}

		var val float64
		switch t.wave {
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(t.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * t.phase)
		}
		val *= t.envelope()

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

// envelope is a linear attack and release gain in [0, 1].
func (t *tone) envelope() float64 {
	if t.edge == 0 {
		return 1
	}
	if t.pos < t.edge {
		return float64(t.pos) / float64(t.edge)
	}
	if left := t.total - t.pos; left < t.edge {
		return float64(left) / float64(t.edge)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// Melody plays notes back to back.
func Melody(rate beep.SampleRate, notes ...Note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = NewTone(n, rate)
	}
	return beep.Seq(parts...)
}
