package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

var cueNotes = map[core.Cue][]Note{
	core.CueMove:   {{Freq: 220, Dur: 30 * time.Millisecond, Wave: WaveSquare}},
	core.CueRotate: {{Freq: 330, Dur: 40 * time.Millisecond, Wave: WaveSquare}},
	core.CueDrop:   {{Freq: 140, Dur: 90 * time.Millisecond, Wave: WaveSine}},
	core.CueLine: {
		{Freq: 523.25, Dur: 60 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 659.25, Dur: 60 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 783.99, Dur: 60 * time.Millisecond, Wave: WaveTriangle},
	},
	core.CueHold: {{Freq: 440, Dur: 50 * time.Millisecond, Wave: WaveTriangle}},
	core.CueLevelUp: {
		{Freq: 523.25, Dur: 80 * time.Millisecond, Wave: WaveSquare},
		{Freq: 783.99, Dur: 80 * time.Millisecond, Wave: WaveSquare},
		{Freq: 1046.5, Dur: 120 * time.Millisecond, Wave: WaveSquare},
	},
	core.CueGameOver: {
		{Freq: 392, Dur: 150 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 329.63, Dur: 150 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 261.63, Dur: 150 * time.Millisecond, Wave: WaveTriangle},
		{Freq: 196, Dur: 300 * time.Millisecond, Wave: WaveTriangle},
	},
}

// Synth returns the built-in sound for a cue, or nil for unknown cues.
func Synth(c core.Cue) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	return Melody(sampleRate, notes...)
}
