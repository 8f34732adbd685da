package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/board"
)

// ErrIllegalTransition reports a resolver state change outside the transition table
var ErrIllegalTransition = errors.New("illegal resolver transition")

// State is the resolution phase of the board
type State int

const (
	StateIdle State = iota
	StateSwapPending
	StateMatchDetected
	StateClearing
	StateGravity
)

var stateNames = [...]string{
	StateIdle:          "idle",
	StateSwapPending:   "swap_pending",
	StateMatchDetected: "match_detected",
	StateClearing:      "clearing",
	StateGravity:       "gravity",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

var validTransitions = map[State][]State{
	StateIdle:          {StateSwapPending, StateMatchDetected},
	StateSwapPending:   {StateIdle, StateMatchDetected},
	StateMatchDetected: {StateClearing},
	StateClearing:      {StateGravity},
	StateGravity:       {StateMatchDetected, StateIdle},
}

// CanTransition checks the resolver transition table
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Delays paces each resolution step; all may be zero
type Delays struct {
	SwapSettle time.Duration
	MatchHold  time.Duration
	ClearHold  time.Duration
	FallSettle time.Duration
}

// Resolver drives one board from a swap through every cascade back to rest
// Transitions wait on a tick deadline, and on the animation settling where gems move
type Resolver struct {
	board  *board.Board
	sched  *Scheduler
	delays Delays
	points int
	log    logrus.FieldLogger
	emit   Listener

	now    uint64
	state  State
	halted bool
	dirty  bool

	swapA, swapB board.Coord
	matched      board.MatchSet
	chain        int
}

// NewResolver binds a resolver to a board; emit may be nil
func NewResolver(b *board.Board, sched *Scheduler, delays Delays, pointsPerToken int, log logrus.FieldLogger, emit Listener) *Resolver {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Resolver{
		board:  b,
		sched:  sched,
		delays: delays,
		points: pointsPerToken,
		log:    log,
		emit:   emit,
		dirty:  true,
	}
}

func (r *Resolver) State() State { return r.state }
func (r *Resolver) Halted() bool { return r.halted }
func (r *Resolver) Now() uint64 { return r.now }

// Chain returns the current chain step, zero when idle
func (r *Resolver) Chain() int { return r.chain }

// Busy reports whether input must be refused
func (r *Resolver) Busy() bool {
	return r.halted || r.state != StateIdle || !r.board.Settled()
}

// MarkDirty requests a match scan on the next settled idle tick, after external board edits
func (r *Resolver) MarkDirty() {
	r.dirty = true
}

// Halt freezes the resolver; every pending transition becomes a no-op
func (r *Resolver) Halt() {
	r.halted = true
	r.sched.Cancel()
}

// RequestSwap starts resolving a swap between two adjacent cells
// Returns false without side effects when the request is not allowed right now
func (r *Resolver) RequestSwap(a, b board.Coord) bool {
	reason := ""
	switch {
	case r.halted:
		reason = "halted"
	case r.state != StateIdle:
		reason = "resolving"
	case !r.board.Settled():
		reason = "animating"
	case !r.board.InBounds(a) || !r.board.InBounds(b):
		reason = "out of bounds"
	case !a.Adjacent(b):
		reason = "not adjacent"
	}
	if reason != "" {
		r.log.WithFields(logrus.Fields{"a": a, "b": b, "reason": reason}).Debug("swap rejected")
		return false
	}

	r.board.Swap(a, b)
	r.swapA, r.swapB = a, b
	r.state = StateSwapPending
	r.sched.Schedule(r.now, r.delays.SwapSettle)
	r.emit(Event{Type: EventSwap, A: a, B: b})
	return true
}

// Tick advances the clock one tick and runs every transition that has become due
// Returns a wrapped board.ErrInvariant when gravity leaves the board inconsistent; the resolver halts
func (r *Resolver) Tick() error {
	if r.halted {
		return nil
	}
	r.now++

	for {
		moved, err := r.step()
		if err != nil {
			r.Halt()
			return err
		}
		if !moved || r.halted {
			return nil
		}
	}
}

// step performs at most one transition
func (r *Resolver) step() (bool, error) {
	settled := r.board.Settled()

	switch r.state {
	case StateIdle:
		if !r.dirty || !settled {
			return false, nil
		}
		r.dirty = false
		m := r.board.Matches()
		if m.Len() == 0 {
			return false, nil
		}
		r.chain = 1
		return true, r.enterMatch(m)

	case StateSwapPending:
		if !settled || !r.sched.Due(r.now) {
			return false, nil
		}
		m := r.board.Matches()
		if m.Len() == 0 {
			r.board.Swap(r.swapA, r.swapB)
			if err := r.transition(StateIdle); err != nil {
				return false, err
			}
			r.emit(Event{Type: EventSwapReverted, A: r.swapA, B: r.swapB})
			return true, nil
		}
		r.emit(Event{Type: EventSwapAccepted, A: r.swapA, B: r.swapB})
		r.chain = 1
		return true, r.enterMatch(m)

	case StateMatchDetected:
		if !r.sched.Due(r.now) {
			return false, nil
		}
		return true, r.clear()

	case StateClearing:
		if !r.sched.Due(r.now) {
			return false, nil
		}
		r.board.ApplyGravity()
		if err := r.board.Validate(); err != nil {
			return false, fmt.Errorf("gravity after chain %d: %w", r.chain, err)
		}
		if err := r.transition(StateGravity); err != nil {
			return false, err
		}
		r.sched.Schedule(r.now, r.delays.FallSettle)
		return true, nil

	case StateGravity:
		if !settled || !r.sched.Due(r.now) {
			return false, nil
		}
		m := r.board.Matches()
		if m.Len() > 0 {
			r.chain++
			return true, r.enterMatch(m)
		}
		if err := r.transition(StateIdle); err != nil {
			return false, err
		}
		chain := r.chain
		r.chain = 0
		r.emit(Event{Type: EventSettled, Chain: chain})
		return true, nil
	}
	return false, nil
}

func (r *Resolver) enterMatch(m board.MatchSet) error {
	if err := r.transition(StateMatchDetected); err != nil {
		return err
	}
	r.matched = m
	cells := m.Cells()
	kinds := make([]board.Kind, len(cells))
	for i, c := range cells {
		t := r.board.Token(c)
		t.Desaturated = true
		kinds[i] = t.Kind
	}
	r.sched.Schedule(r.now, r.delays.MatchHold)
	r.emit(Event{Type: EventMatch, Cells: cells, Kinds: kinds, Chain: r.chain})
	return nil
}

func (r *Resolver) clear() error {
	if err := r.transition(StateClearing); err != nil {
		return err
	}
	cells := r.matched.Cells()
	kinds := make([]board.Kind, len(cells))
	for i, c := range cells {
		t := r.board.Token(c)
		kinds[i] = t.Kind
		t.Kind = board.Empty
		t.Desaturated = false
	}
	r.matched = board.MatchSet{}
	r.sched.Schedule(r.now, r.delays.ClearHold)
	r.emit(Event{
		Type:   EventClear,
		Cells:  cells,
		Kinds:  kinds,
		Points: len(cells) * r.points,
		Chain:  r.chain,
	})
	return nil
}

func (r *Resolver) transition(to State) error {
	if !CanTransition(r.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, r.state, to)
	}
	r.log.WithFields(logrus.Fields{"from": r.state, "to": to, "tick": r.now}).Debug("resolver transition")
	r.state = to
	return nil
}
