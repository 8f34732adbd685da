package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
)

// scriptedRand replays queued IntN results, then falls back to a seeded source
type scriptedRand struct {
	*rand.Rand
	next []int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.next) > 0 {
		v := r.next[0]
		r.next = r.next[1:]
		return v % n
	}
	return r.Rand.IntN(n)
}

func newScripted(seed uint64) *scriptedRand {
	return &scriptedRand{Rand: newRand(seed)}
}

// recorder collects every event a session emits
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(typ EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func (r *recorder) last(typ EventType) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == typ {
			return r.events[i], true
		}
	}
	return Event{}, false
}

func newTestSession(t *testing.T, cfg config.Config, rng board.Rand) (*Session, *recorder) {
	t.Helper()
	s, err := NewSession(cfg, WithRand(rng))
	require.NoError(t, err)
	rec := &recorder{}
	s.OnEvent(rec.listen)
	return s, rec
}

// paint overwrites the board with kinds (col + 2*row) % 4, which holds no runs
// Types 4 and 5 stay free for planting matches
func paint(t *testing.T, b *board.Board) {
	t.Helper()
	for c := 0; c < b.Cols(); c++ {
		for r := 0; r < b.Rows(); r++ {
			b.SetKind(board.Coord{Col: c, Row: r}, board.Occupied((c+2*r)%4))
		}
	}
	require.Zero(t, b.Matches().Len())
}

func set(b *board.Board, col, row, typ int) {
	b.SetKind(board.Coord{Col: col, Row: row}, board.Occupied(typ))
}

func typeAt(t *testing.T, b *board.Board, col, row int) int {
	t.Helper()
	typ, ok := b.Kind(board.Coord{Col: col, Row: row}).Type()
	require.True(t, ok, "cell (%d,%d) is empty", col, row)
	return typ
}

// tickUntil ticks until done reports true or the budget runs out, returning ticks used
func tickUntil(t *testing.T, s *Session, budget int, done func() bool) int {
	t.Helper()
	for i := 1; i <= budget; i++ {
		require.NoError(t, s.Tick())
		if done() {
			return i
		}
	}
	t.Fatalf("condition not reached in %d ticks", budget)
	return budget
}
