package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// SoundSource names the WAV file for each cue. An empty name selects
// the synthesized tone.
type SoundSource interface {
	Sound(core.Cue) string
}

// Player mixes cue sounds into a single speaker stream.
// All methods are safe for concurrent use and are no-ops before Init.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	buffers     map[core.Cue]*beep.Buffer
	level       float64
	initialized bool
	muted       bool
}

// NewPlayer creates a player with the given linear volume in [0, 1].
func NewPlayer(volume float64) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		buffers: make(map[core.Cue]*beep.Buffer),
	}
	p.volume = &effects.Volume{Streamer: p.mixer, Base: 2}
	p.applyVolume(volume)
	return p
}

// Load decodes the files named by src into memory, replacing any sounds
// loaded before. Cues whose file fails to load fall back to the synthesizer;
// one error is returned per failed file.
func (p *Player) Load(src SoundSource) []error {
	buffers := make(map[core.Cue]*beep.Buffer)
	var errs []error
	for _, c := range core.Cues {
		path := src.Sound(c)
		if path == "" {
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("audio: cannot load %s sound: %w", c, err))
			continue
		}
		buffers[c] = buf
	}

	p.mu.Lock()
	p.buffers = buffers
	p.mu.Unlock()
	return errs
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.initialized = true
	return nil
}

// Play starts the sound for a cue without waiting for it to finish.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := p.streamer(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// streamer returns a fresh stream for c. The caller holds p.mu.
func (p *Player) streamer(c core.Cue) beep.Streamer {
	if buf, ok := p.buffers[c]; ok {
		return buf.Streamer(0, buf.Len())
	}
	return Synth(c)
}

// SetVolume sets the linear volume in [0, 1]; out-of-range values are clamped.
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.applyVolume(v)
}

// Volume returns the linear volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Player) applyVolume(v float64) {
	p.level = core.ClampF(v, 0, 1)
	if p.level == 0 {
		p.volume.Volume = 0
		p.volume.Silent = true
		return
	}
	p.volume.Volume = math.Log2(p.level)
	p.volume.Silent = false
}

// SetMuted enables or disables playback of new cues.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether cues are being dropped.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
