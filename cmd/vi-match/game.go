package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/asset"
	"github.com/lixenwraith/vi-match/audio"
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/render"
	"github.com/lixenwraith/vi-match/render/raster"
	"github.com/lixenwraith/vi-match/terminal"
)

// game runs sessions on a terminal screen until the player quits
type game struct {
	cfg   config.Config
	seed  uint64 // 0 picks a fresh seed per session
	log   *logrus.Logger
	sound *audio.SoundManager

	screen   *terminal.Screen
	composer *render.Composer
	hud      terminal.HUD
	canvas   *raster.Canvas
	layout   terminal.Layout
	input    terminal.Translator

	session *engine.Session
	cursor  board.Coord
}

func newGame(cfg config.Config, seed uint64, log *logrus.Logger, sound *audio.SoundManager, screen *terminal.Screen) (*game, error) {
	size := int(cfg.Board.CellSize)
	sprites, err := asset.Load(cfg, size)
	if err != nil {
		return nil, err
	}

	theme := render.NewTheme(cfg)
	g := &game{
		cfg:      cfg,
		seed:     seed,
		log:      log,
		sound:    sound,
		screen:   screen,
		composer: render.NewComposer(theme),
		hud: terminal.HUD{
			Text:       core.RGBWhite,
			Dim:        render.Lerp(theme.Background, core.RGBWhite, 0.5),
			Background: theme.Background,
			Panel:      render.Scale(render.Sepia(theme.Background), 1-theme.PanelAlpha),
		},
		canvas: raster.New(cfg.Board.Cols*size, cfg.Board.Rows*size, sprites),
	}
	g.resize()
	return g, g.restart()
}

// restart replaces the session; a fixed seed advances so every round differs
func (g *game) restart() error {
	opts := []engine.Option{engine.WithLogger(g.log)}
	if g.seed != 0 {
		opts = append(opts, engine.WithSeed(g.seed))
		g.seed++
	}
	s, err := engine.NewSession(g.cfg, opts...)
	if err != nil {
		return err
	}
	if g.sound != nil {
		s.OnEvent(g.sound.HandleEvent)
	}
	s.OnEvent(func(ev engine.Event) {
		if ev.Type == engine.EventGameOver {
			g.log.WithField("score", ev.Score).Info("game over")
		}
	})
	g.session = s
	g.cursor = board.Coord{Col: g.cfg.Board.Cols / 2, Row: g.cfg.Board.Rows / 2}
	return nil
}

func (g *game) resize() {
	w, h := g.screen.Size()
	b := g.canvas.Bounds()
	g.layout = terminal.NewLayout(w, h, b.Dx(), b.Dy())
}

// run is the frame loop: one session tick per frame, input between ticks
func (g *game) run() error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.Timing.TickRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			done, err := g.handle(g.input.Translate(ev))
			if err != nil || done {
				return err
			}
		case <-ticker.C:
			if err := g.session.Tick(); err != nil {
				return err
			}
			g.draw()
		}
	}
}

// handle applies one intent and reports whether to quit
func (g *game) handle(in terminal.Intent) (bool, error) {
	switch in.Action {
	case terminal.ActionQuit:
		return true, nil
	case terminal.ActionRestart:
		return false, g.restart()
	case terminal.ActionResize:
		g.screen.Sync()
		g.resize()
	case terminal.ActionMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	case terminal.ActionMove:
		g.cursor.Col = min(max(g.cursor.Col+in.DX, 0), g.cfg.Board.Cols-1)
		g.cursor.Row = min(max(g.cursor.Row+in.DY, 0), g.cfg.Board.Rows-1)
	case terminal.ActionSelect:
		g.session.Tap(g.cursor)
	case terminal.ActionClick:
		if c, ok := g.cellAt(in.X, in.Y); ok {
			g.cursor = c
			g.session.Tap(c)
		}
	case terminal.ActionHint:
		if a, b, ok := g.session.Hint(); ok {
			g.session.ClearSelection()
			g.session.Tap(a)
			g.cursor = b
		}
	}
	return false, nil
}

// cellAt maps a terminal cell to the board cell drawn there
func (g *game) cellAt(x, y int) (board.Coord, bool) {
	p, ok := g.layout.Pixel(x, y)
	if !ok {
		return board.Coord{}, false
	}
	size := int(g.cfg.Board.CellSize)
	return board.Coord{Col: p.X / size, Row: p.Y / size}, true
}

func (g *game) draw() {
	w, h := g.screen.Size()
	g.screen.Fill(' ', g.screen.Style(g.hud.Text, g.hud.Background))
	if !g.layout.Fits(w, h) {
		g.screen.DrawCentered(0, w, h/2, "terminal too small", g.screen.Style(g.hud.Text, g.hud.Background))
		g.screen.Show()
		return
	}

	cursor := g.cursor
	frame := render.BuildFrame(g.session, &cursor)
	g.composer.Compose(g.canvas, frame)
	g.screen.Present(g.canvas.Image(), g.layout.X, g.layout.Y)

	st := g.session.State()
	muted := g.sound != nil && g.sound.Muted()
	g.hud.DrawStatus(g.screen, g.layout, st, muted)
	if st.Over {
		g.hud.DrawGameOver(g.screen, g.layout, g.composer.Panel(g.canvas), st)
	}
	g.screen.Show()
}
