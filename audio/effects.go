package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-match/parameter"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// at returns the wave value in [-1, 1] for a phase in [0, 1)
func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Tone is one enveloped note, optionally gliding to a second frequency
type Tone struct {
	Freq     float64
	GlideTo  float64 // Hz at the end of the note, 0 holds Freq
	Wave     Wave
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Streamer renders the tone at the given sample rate
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &voice{
		tone:    t,
		rate:    float64(rate),
		total:   rate.N(t.Duration),
		attack:  rate.N(t.Attack),
		release: rate.N(t.Release),
	}
}

// voice streams one Tone with a linear attack and release ramp
type voice struct {
	tone    Tone
	rate    float64
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		val := v.tone.Wave.at(v.phase) * v.gain()
		samples[i] = [2]float64{val, val}

		v.phase += v.freq() / v.rate
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// freq sweeps exponentially so the glide sounds even across octaves
func (v *voice) freq() float64 {
	if v.tone.GlideTo <= 0 || v.tone.Freq <= 0 {
		return v.tone.Freq
	}
	progress := float64(v.pos) / float64(v.total)
	return v.tone.Freq * math.Pow(v.tone.GlideTo/v.tone.Freq, progress)
}

func (v *voice) gain() float64 {
	switch {
	case v.pos < v.attack:
		return float64(v.pos) / float64(v.attack)
	case v.release > 0 && v.pos >= v.total-v.release:
		return float64(v.total-v.pos) / float64(v.release)
	}
	return 1
}

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// semitones shifts a frequency by n equal-tempered steps
func semitones(freq, n float64) float64 {
	return freq * math.Pow(2, n/12)
}

// CreateSwapSound generates a short rising chirp as gems start sliding
func CreateSwapSound(cfg *AudioConfig) beep.Streamer {
	s := Tone{
		Freq:     parameter.SwapSoundFreq,
		GlideTo:  parameter.SwapSoundGlideTo,
		Wave:     WaveTriangle,
		Duration: parameter.SwapSoundDuration,
		Attack:   parameter.SwapSoundAttack,
		Release:  parameter.SwapSoundRelease,
	}.Streamer(beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.volume(SoundSwap)*parameter.SwapSoundLevel)
}

// CreateRejectSound generates a falling square buzz for a swap that slides back
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	s := Tone{
		Freq:     parameter.RejectSoundFreq,
		GlideTo:  parameter.RejectSoundGlideTo,
		Wave:     WaveSquare,
		Duration: parameter.RejectSoundDuration,
		Attack:   parameter.RejectSoundAttack,
		Release:  parameter.RejectSoundRelease,
	}.Streamer(beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.volume(SoundReject))
}

// CreateClearSound generates a bell ding for removed gems
func CreateClearSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	bell := Tone{
		Freq:     parameter.ClearSoundFreq,
		Wave:     WaveSine,
		Duration: parameter.ClearSoundDuration,
		Attack:   parameter.ClearSoundAttack,
		Release:  parameter.ClearSoundFundamentalRelease,
	}
	overtone := bell
	overtone.Freq *= 2
	overtone.Release = parameter.ClearSoundOvertoneRelease

	mixed := beep.Mix(
		newVolume(bell.Streamer(rate), 1-parameter.ClearSoundOvertoneMix),
		newVolume(overtone.Streamer(rate), parameter.ClearSoundOvertoneMix),
	)
	return newVolume(mixed, cfg.volume(SoundClear))
}

// CreateCascadeSound generates a two-note chime rising one semitone per chain step
func CreateCascadeSound(cfg *AudioConfig, chain int) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := min(max(chain-2, 0), parameter.CascadeSoundMaxSteps)
	base := semitones(parameter.CascadeSoundBaseFreq, float64(step))

	first := Tone{
		Freq:     base,
		Wave:     WaveTriangle,
		Duration: parameter.CascadeSoundNote1Duration,
		Attack:   parameter.CascadeSoundAttack,
		Release:  parameter.CascadeSoundNote1Release,
	}
	// Second note a fourth above
	second := first
	second.Freq = semitones(base, 5)
	second.Duration = parameter.CascadeSoundNote2Duration
	second.Release = parameter.CascadeSoundNote2Release

	chime := beep.Seq(first.Streamer(rate), second.Streamer(rate))
	return newVolume(chime, cfg.volume(SoundCascade)*parameter.CascadeSoundLevel)
}

// CreateGameOverSound generates three falling notes over a fading noise tail
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, 3)
	for _, n := range []float64{0, -4, -7} {
		notes = append(notes, Tone{
			Freq:     semitones(parameter.GameOverSoundBaseFreq, n),
			Wave:     WaveSine,
			Duration: parameter.GameOverNoteDuration,
			Attack:   parameter.GameOverSoundAttack,
			Release:  parameter.GameOverSoundRelease,
		}.Streamer(rate))
	}
	tail := Tone{
		Wave:     WaveNoise,
		Duration: parameter.GameOverTailDuration,
		Attack:   parameter.GameOverSoundAttack,
		Release:  parameter.GameOverTailRelease,
	}.Streamer(rate)

	mixed := beep.Mix(beep.Seq(notes...), newVolume(tail, parameter.GameOverTailLevel))
	return newVolume(mixed, cfg.volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for a sound type; chain only affects SoundCascade
func GetSoundEffect(soundType SoundType, cfg *AudioConfig, chain int) beep.Streamer {
	switch soundType {
	case SoundSwap:
		return CreateSwapSound(cfg)
	case SoundReject:
		return CreateRejectSound(cfg)
	case SoundClear:
		return CreateClearSound(cfg)
	case SoundCascade:
		return CreateCascadeSound(cfg, chain)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
