package engine

// SessionState is a read-only snapshot of a session for the HUD and reports
type SessionState struct {
	Score int

	// TimeRemaining is exact in seconds; SecondsLeft rounds up for display
	TimeRemaining float64
	SecondsLeft   int

	// Animating is true when some gem moved on the last tick
	Animating bool
	// Resolving is true while input is refused: a swap or chain is in flight or gems are still sliding
	Resolving bool
	Over      bool

	Moves    int // accepted swaps
	Cascades int // clears beyond the first of a chain
	Phase    State
	Chain    int
}
