package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/parameter"
)

// SoundManager mixes game effects onto the speaker
// Every method is safe without a working audio device; sounds are then dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	lastPlayed [soundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Note: beep keeps the speaker open for the process lifetime,
	// clearing all streamers ensures no audio artifacts
	sm.initialized = false
}

// ToggleMute flips muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play queues one effect; chain pitches SoundCascade
// Repeats of the same effect within MinSoundGap are dropped
func (sm *SoundManager) Play(st SoundType, chain int) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || st < 0 || st >= soundTypeCount {
		return false
	}

	now := sm.now()
	if now.Sub(sm.lastPlayed[st]) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now

	s := GetSoundEffect(st, sm.cfg, chain)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// HandleEvent maps engine events to effects, it is an engine.Listener
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventSwap:
		sm.Play(SoundSwap, 0)
	case engine.EventSwapReverted:
		sm.Play(SoundReject, 0)
	case engine.EventClear:
		if ev.Chain > 1 {
			sm.Play(SoundCascade, ev.Chain)
		} else {
			sm.Play(SoundClear, ev.Chain)
		}
	case engine.EventGameOver:
		sm.Play(SoundGameOver, 0)
	}
}

// Active returns the number of effects still playing
func (sm *SoundManager) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
