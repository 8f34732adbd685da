package engine

import "time"

// Scheduler holds at most one pending deadline, measured in ticks
// Durations are converted once at scheduling time, so pacing is exact and reproducible
type Scheduler struct {
	rate     int64
	deadline uint64
	pending  bool
}

// NewScheduler creates a scheduler for the given ticks per second
func NewScheduler(tickRate int) *Scheduler {
	return &Scheduler{rate: int64(tickRate)}
}

// Ticks converts a duration to whole ticks, rounding up
func (s *Scheduler) Ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	sec := int64(time.Second)
	return uint64((int64(d)*s.rate + sec - 1) / sec)
}

// Schedule replaces any pending deadline with now + delay
// A zero delay is due on the same tick
func (s *Scheduler) Schedule(now uint64, delay time.Duration) {
	s.deadline = now + s.Ticks(delay)
	s.pending = true
}

// Due reports whether the pending deadline has been reached and consumes it
// Returns true at most once per Schedule
func (s *Scheduler) Due(now uint64) bool {
	if !s.pending || now < s.deadline {
		return false
	}
	s.pending = false
	return true
}

// Cancel drops the pending deadline
func (s *Scheduler) Cancel() {
	s.pending = false
}

// Pending reports whether a deadline is waiting
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Remaining returns the ticks left before the pending deadline, zero when due or idle
func (s *Scheduler) Remaining(now uint64) uint64 {
	if !s.pending || now >= s.deadline {
		return 0
	}
	return s.deadline - now
}
