package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Tone describes a short sine cue
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // effects.Volume on base 2, 0 = unity
}

// SoundManager plays the collision cue through the speaker
// All methods are safe to call before Initialize or after Close; they do nothing then
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	hit         Tone
	initialized bool
}

// NewSoundManager creates a manager for the hit tone
func NewSoundManager(hit Tone) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		hit:   hit,
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether audio output is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayHit queues the collision tone
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, err := toneStreamer(sm.hit)
	if err != nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback and releases the device
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// toneStreamer builds a finite sine tone at the output sample rate
func toneStreamer(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Frequency)
	if err != nil {
		return nil, errors.Wrapf(err, "sine tone %vHz", t.Frequency)
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   t.Volume,
	}, nil
}
