package parameter

import "time"

// Tick and Session
const (
	// TickRate is the number of engine ticks per second, one per rendered frame
	TickRate = 60
	// GameDuration is the countdown length of one session
	GameDuration = 60 * time.Second
)

// Resolution Pacing
// Delays only make each step observable; zero-length delays yield the same board and score
const (
	// SwapSettle is the pause between an accepted swap and its match check
	SwapSettle = 250 * time.Millisecond
	// MatchHold is how long matched gems stay desaturated before removal
	MatchHold = 400 * time.Millisecond
	// ClearHold is the pause between removal and gravity
	ClearHold = 100 * time.Millisecond
	// FallSettle is the minimum fall time before the cascade check
	FallSettle = 400 * time.Millisecond
)
