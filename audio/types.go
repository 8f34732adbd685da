package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSwap     SoundType = iota // Swap accepted for evaluation
	SoundReject                    // Swap without a match slides back
	SoundClear                     // Gems removed
	SoundCascade                   // Follow-up clear in a chain
	SoundGameOver                  // Timer expired
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"swap", "reject", "clear", "cascade", "game_over"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType maps a name back to its type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled  = errors.New("audio disabled")
	ErrUnknownSound   = errors.New("unknown sound type")
	ErrNotInitialized = errors.New("audio not initialized")
)
