package parameter

import "time"

// Audio Engine
const (
	// AudioBufferDuration is the speaker buffer, about three frames at 60 TPS
	AudioBufferDuration = 50 * time.Millisecond
	// MinSoundGap suppresses repeats of one effect closer than this
	MinSoundGap = 40 * time.Millisecond
)

// Swap Sound, a short rising chirp
const (
	SwapSoundDuration = 70 * time.Millisecond
	SwapSoundAttack   = 5 * time.Millisecond
	SwapSoundRelease  = 40 * time.Millisecond
	SwapSoundFreq     = 660.0 // Hz
	SwapSoundGlideTo  = 990.0 // Hz, a fifth up
)

// Reject Sound, a failed swap sliding back
const (
	RejectSoundDuration = 120 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 30 * time.Millisecond
	RejectSoundFreq     = 220.0 // Hz
	RejectSoundGlideTo  = 110.0 // Hz, an octave down
)

// Clear Sound
const (
	ClearSoundDuration           = 450 * time.Millisecond
	ClearSoundAttack             = 5 * time.Millisecond
	ClearSoundFundamentalRelease = 400 * time.Millisecond
	ClearSoundOvertoneRelease    = 150 * time.Millisecond
	ClearSoundFreq               = 880.0 // Hz
)

// Cascade Sound, pitched up a semitone per chain step
const (
	CascadeSoundNote1Duration = 60 * time.Millisecond
	CascadeSoundNote2Duration = 200 * time.Millisecond
	CascadeSoundAttack        = 5 * time.Millisecond
	CascadeSoundNote1Release  = 30 * time.Millisecond
	CascadeSoundNote2Release  = 150 * time.Millisecond
	CascadeSoundBaseFreq      = 987.77 // Hz, B5
	CascadeSoundMaxSteps      = 12
)

// Game Over Sound, three falling notes over a noise tail
const (
	GameOverNoteDuration  = 180 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 90 * time.Millisecond
	GameOverTailDuration  = 400 * time.Millisecond
	GameOverTailRelease   = 350 * time.Millisecond
	GameOverSoundBaseFreq = 523.25 // Hz, C5
	GameOverTailLevel     = 0.08
)

// Mix levels applied on top of the configured per-effect volume
const (
	SwapSoundLevel        = 0.5
	CascadeSoundLevel     = 0.5
	ClearSoundOvertoneMix = 0.3
)
