package audio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/parameter"
)

// EnvEffectVolumes holds per-effect volumes as JSON, e.g. {"clear":0.8,"swap":0.3}
const EnvEffectVolumes = config.EnvPrefix + "SFX_VOLUMES"

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the reference mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.MasterVolume,
		SampleRate:   parameter.SampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundSwap:     0.35,
			SoundReject:   0.5,
			SoundClear:    0.8,
			SoundCascade:  0.7,
			SoundGameOver: 0.9,
		},
	}
}

// FromConfig builds the audio settings of a session config, then applies the effect volume override
func FromConfig(cfg config.Config) (*AudioConfig, error) {
	ac := DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	if raw := os.Getenv(EnvEffectVolumes); raw != "" {
		if err := ac.ParseEffectVolumes(raw); err != nil {
			return nil, err
		}
	}
	return ac, nil
}

// ParseEffectVolumes overlays a JSON object of effect name to volume
func (c *AudioConfig) ParseEffectVolumes(raw string) error {
	var volumes map[string]float64
	if err := json.Unmarshal([]byte(raw), &volumes); err != nil {
		return fmt.Errorf("%w: %s: %v", config.ErrInvalid, EnvEffectVolumes, err)
	}
	for name, v := range volumes {
		st, ok := ParseSoundType(name)
		if !ok {
			return fmt.Errorf("%w: %s: %w %q", config.ErrInvalid, EnvEffectVolumes, ErrUnknownSound, name)
		}
		c.EffectVolumes[st] = min(max(v, 0), 1)
	}
	return nil
}

// volume returns the final gain of one effect
func (c *AudioConfig) volume(st SoundType) float64 {
	return c.EffectVolumes[st] * c.MasterVolume
}
