package engine

import "github.com/lixenwraith/vi-match/board"

// EventType identifies a resolution or session event
type EventType int

const (
	// EventSwap fires when a swap request is accepted and the gems start sliding
	EventSwap EventType = iota
	// EventSwapReverted fires when a swap produced no match and slides back
	EventSwapReverted
	// EventSwapAccepted fires when a swap produced a match
	EventSwapAccepted
	// EventMatch fires when matched gems are marked, once per chain step
	EventMatch
	// EventClear fires when matched gems are removed and scored
	EventClear
	// EventSettled fires when a chain ends with a matchless board
	EventSettled
	// EventGameOver fires once when the timer expires
	EventGameOver
)

var eventNames = [...]string{
	EventSwap:         "swap",
	EventSwapReverted: "swap_reverted",
	EventSwapAccepted: "swap_accepted",
	EventMatch:        "match",
	EventClear:        "clear",
	EventSettled:      "settled",
	EventGameOver:     "game_over",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event carries the payload of one engine notification
// Fields unused by a type are zero
type Event struct {
	Type EventType

	// Swap endpoints for EventSwap, EventSwapReverted, EventSwapAccepted
	A, B board.Coord

	// Cells and their kinds before removal, for EventMatch and EventClear
	Cells []board.Coord
	Kinds []board.Kind

	Points int // EventClear
	Chain  int // 1 for the clear caused by a swap, +1 per cascade
	Score  int // EventGameOver
}

// Listener receives events synchronously on the tick goroutine
type Listener func(Event)
