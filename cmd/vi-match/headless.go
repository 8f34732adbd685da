package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/engine"
)

// summary is the result of a finished session
type summary struct {
	Session  string
	Seed     uint64
	Ticks    int
	Score    int
	Moves    int
	Cascades int
}

func (s summary) String() string {
	return fmt.Sprintf("session %s seed %d: score %d, %d moves, %d cascades in %d ticks",
		s.Session, s.Seed, s.Score, s.Moves, s.Cascades, s.Ticks)
}

// autoplay ticks the session to the end, swapping the hinted pair whenever the board is idle
func autoplay(s *engine.Session, log logrus.FieldLogger) (summary, error) {
	ticks := 0
	for !s.Over() {
		if !s.Resolving() {
			if a, b, ok := s.Hint(); ok {
				s.Swap(a, b)
			}
		}
		if err := s.Tick(); err != nil {
			return summary{}, fmt.Errorf("tick %d: %w", ticks, err)
		}
		ticks++
	}

	st := s.State()
	res := summary{
		Session:  s.ID().String(),
		Seed:     s.Seed(),
		Ticks:    ticks,
		Score:    st.Score,
		Moves:    st.Moves,
		Cascades: st.Cascades,
	}
	log.WithFields(logrus.Fields{
		"score":    res.Score,
		"moves":    res.Moves,
		"cascades": res.Cascades,
		"ticks":    res.Ticks,
	}).Info("autoplay finished")
	return res, nil
}

// runHeadless plays one session without a screen and prints the summary to w
func runHeadless(s *engine.Session, w io.Writer, log logrus.FieldLogger) error {
	res, err := autoplay(s, log)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}
