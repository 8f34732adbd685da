package engine

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/animation"
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/core"
)

// Session is one timed game: board, resolver, animation, score and selection
// All methods run on the caller's goroutine, one Tick per frame with input between ticks
type Session struct {
	id   uuid.UUID
	seed uint64
	cfg  config.Config
	rng  board.Rand
	log  *logrus.Entry

	board     *board.Board
	sched     *Scheduler
	resolver  *Resolver
	timeline  *animation.Timeline
	particles *animation.Particles
	colors    []core.RGB

	score     int
	moves     int
	cascades  int
	tickRate  int
	remaining int64
	animating bool
	over      bool
	fault     error

	selected    board.Coord
	hasSelected bool

	listeners []Listener
}

// Option customizes a new session
type Option func(*Session)

// WithLogger routes session logs; the default discards them
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = l.WithField("session", s.id.String())
	}
}

// WithSeed makes the session reproducible
func WithSeed(seed uint64) Option {
	return func(s *Session) {
		s.seed = seed
		s.rng = newRand(seed)
	}
}

// WithRand supplies the random source directly, overriding WithSeed
func WithRand(r board.Rand) Option {
	return func(s *Session) {
		s.rng = r
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSession validates cfg and builds a ready-to-play session
func NewSession(cfg config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	quiet := logrus.New()
	quiet.Out = io.Discard
	s := &Session{
		id:       uuid.New(),
		cfg:      cfg,
		tickRate: cfg.Timing.TickRate,
		colors:   cfg.ParticleColors(),
	}
	s.log = quiet.WithField("session", s.id.String())
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.seed = uint64(time.Now().UnixNano())
		s.rng = newRand(s.seed)
	}

	b, err := board.New(board.Geometry{
		Cols:     cfg.Board.Cols,
		Rows:     cfg.Board.Rows,
		CellSize: cfg.Board.CellSize,
	}, cfg.Board.Types, s.rng)
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	s.board = b

	s.timeline = animation.NewTimeline(animation.Params{
		Speed:         cfg.Animation.Speed,
		SnapThreshold: cfg.Animation.SnapThreshold,
		Rotation:      cfg.Animation.Rotation,
		SpinMin:       cfg.Animation.SpinMin,
		SpinMax:       cfg.Animation.SpinMax,
	})
	s.timeline.Attach(b, s.rng)

	s.particles = animation.NewParticles(animation.ParticleParams{
		Count:    cfg.Particles.Count,
		Speed:    cfg.Particles.Speed,
		SizeMin:  cfg.Particles.SizeMin,
		SizeMax:  cfg.Particles.SizeMax,
		LifeStep: cfg.Particles.LifeStep,
	})

	s.sched = NewScheduler(cfg.Timing.TickRate)
	s.remaining = int64(s.sched.Ticks(cfg.Timing.GameDuration.Duration))
	s.resolver = NewResolver(b, s.sched, Delays{
		SwapSettle: cfg.Timing.SwapSettle.Duration,
		MatchHold:  cfg.Timing.MatchHold.Duration,
		ClearHold:  cfg.Timing.ClearHold.Duration,
		FallSettle: cfg.Timing.FallSettle.Duration,
	}, cfg.Board.PointsPerToken, s.log, s.handle)

	s.log.WithFields(logrus.Fields{
		"seed":  s.seed,
		"cols":  cfg.Board.Cols,
		"rows":  cfg.Board.Rows,
		"types": cfg.Board.Types,
		"ticks": s.remaining,
	}).Info("session started")
	return s, nil
}

func (s *Session) ID() uuid.UUID                   { return s.id }
func (s *Session) Seed() uint64                    { return s.seed }
func (s *Session) Config() config.Config           { return s.cfg }
func (s *Session) Board() *board.Board             { return s.board }
func (s *Session) Particles() *animation.Particles { return s.particles }
func (s *Session) Resolver() *Resolver             { return s.resolver }

// OnEvent registers a listener called synchronously for every engine event
func (s *Session) OnEvent(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Tick advances animation, resolution and the countdown by one tick
// After an invariant violation the session stays frozen and keeps returning the error
func (s *Session) Tick() error {
	if s.fault != nil {
		return s.fault
	}
	if s.over {
		return nil
	}

	s.animating = s.timeline.Advance(s.board)
	s.particles.Advance()

	if err := s.resolver.Tick(); err != nil {
		s.fault = err
		s.log.WithError(err).Error("session frozen")
		return err
	}

	s.remaining--
	if s.remaining <= 0 {
		s.finish()
	}
	return nil
}

func (s *Session) finish() {
	s.over = true
	s.remaining = 0
	s.hasSelected = false
	s.resolver.Halt()
	s.log.WithFields(logrus.Fields{
		"score":    s.score,
		"moves":    s.moves,
		"cascades": s.cascades,
	}).Info("game over")
	s.dispatch(Event{Type: EventGameOver, Score: s.score})
}

// Tap applies a click or keyboard select on a cell
// The first tap selects, a tap on an adjacent cell swaps, any other tap moves the selection
func (s *Session) Tap(c board.Coord) {
	if s.over || s.fault != nil || !s.board.InBounds(c) || s.resolver.Busy() {
		return
	}
	if !s.hasSelected {
		s.selected, s.hasSelected = c, true
		return
	}
	if s.selected.Adjacent(c) {
		from := s.selected
		s.hasSelected = false
		s.Swap(from, c)
		return
	}
	s.selected = c
}

// Swap requests a swap directly, bypassing selection
func (s *Session) Swap(a, b board.Coord) bool {
	if s.over || s.fault != nil {
		return false
	}
	return s.resolver.RequestSwap(a, b)
}

// Selection returns the selected cell, if any
func (s *Session) Selection() (board.Coord, bool) {
	return s.selected, s.hasSelected
}

// ClearSelection drops the selection
func (s *Session) ClearSelection() {
	s.hasSelected = false
}

// Hint returns a swap that would produce a match, if the board has one
func (s *Session) Hint() (board.Coord, board.Coord, bool) {
	return s.board.FindMove()
}

// Animating reports whether any gem moved during the last tick
// It can be false mid-resolution, while a match waits for its clear delay
func (s *Session) Animating() bool {
	return s.animating
}

// Resolving reports whether the engine has committed to a resolution and refuses input
func (s *Session) Resolving() bool {
	return s.resolver.Busy()
}

// Over reports whether the countdown has expired
func (s *Session) Over() bool {
	return s.over
}

// State returns a snapshot for rendering and reporting
func (s *Session) State() SessionState {
	rate := int64(s.tickRate)
	return SessionState{
		Score:         s.score,
		TimeRemaining: float64(s.remaining) / float64(rate),
		SecondsLeft:   int((s.remaining + rate - 1) / rate),
		Animating:     s.animating,
		Resolving:     s.resolver.Busy(),
		Over:          s.over,
		Moves:         s.moves,
		Cascades:      s.cascades,
		Phase:         s.resolver.State(),
		Chain:         s.resolver.Chain(),
	}
}

// handle applies score and effects for resolver events, then forwards them
func (s *Session) handle(ev Event) {
	switch ev.Type {
	case EventSwapAccepted:
		s.moves++
	case EventClear:
		s.score += ev.Points
		if ev.Chain > 1 {
			s.cascades++
		}
		for i, c := range ev.Cells {
			color := core.RGBWhite
			if typ, ok := ev.Kinds[i].Type(); ok && typ < len(s.colors) {
				color = s.colors[typ]
			}
			s.particles.Spawn(s.board.CellCenter(c), color, s.rng)
		}
		s.log.WithFields(logrus.Fields{
			"cells":  len(ev.Cells),
			"points": ev.Points,
			"chain":  ev.Chain,
			"score":  s.score,
		}).Debug("clear")
	}
	s.dispatch(ev)
}

func (s *Session) dispatch(ev Event) {
	for _, l := range s.listeners {
		l(ev)
	}
}
