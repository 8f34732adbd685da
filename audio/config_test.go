package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-match/config"
)

// TestDefaultAudioConfig verifies every effect has a volume
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	if !cfg.Enabled {
		t.Error("Expected audio enabled by default")
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if v, ok := cfg.EffectVolumes[st]; !ok || v <= 0 {
			t.Errorf("%s: missing volume", st)
		}
	}
}

// TestFromConfig verifies session settings carry over
func TestFromConfig(t *testing.T) {
	c := config.Default()
	c.Audio.Enabled = false
	c.Audio.Volume = 0.25

	ac, err := FromConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	if ac.Enabled || ac.MasterVolume != 0.25 {
		t.Errorf("Expected disabled at 0.25, got %v at %f", ac.Enabled, ac.MasterVolume)
	}
}

// TestFromConfigEffectVolumesEnv verifies the JSON override
func TestFromConfigEffectVolumesEnv(t *testing.T) {
	t.Setenv(EnvEffectVolumes, `{"clear": 0.1, "game_over": 2}`)
	ac, err := FromConfig(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if ac.EffectVolumes[SoundClear] != 0.1 {
		t.Errorf("Expected clear volume 0.1, got %f", ac.EffectVolumes[SoundClear])
	}
	if ac.EffectVolumes[SoundGameOver] != 1 {
		t.Errorf("Expected clamped volume 1, got %f", ac.EffectVolumes[SoundGameOver])
	}
}

// TestParseEffectVolumesErrors verifies malformed and unknown input
func TestParseEffectVolumesErrors(t *testing.T) {
	cfg := DefaultAudioConfig()
	if err := cfg.ParseEffectVolumes(`{`); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrInvalid for bad JSON, got %v", err)
	}
	err := cfg.ParseEffectVolumes(`{"trumpet": 1}`)
	if !errors.Is(err, ErrUnknownSound) || !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
}

// TestSoundTypeNames verifies names round trip
func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("%s: round trip gave %v %v", st, got, ok)
		}
	}
	if SoundType(-1).String() != "unknown" {
		t.Error("Expected unknown name for out-of-range type")
	}
}
