package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-match/asset"
	"github.com/lixenwraith/vi-match/audio"
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/render"
	"github.com/lixenwraith/vi-match/render/raster"
)

// window composes frames on the CPU canvas and uploads them once per draw
type window struct {
	cfg   config.Config
	seed  uint64
	log   *logrus.Logger
	sound *audio.SoundManager

	composer *render.Composer
	canvas   *raster.Canvas
	texture  *ebiten.Image
	session  *engine.Session
}

func newWindow(cfg config.Config, seed uint64, log *logrus.Logger, sound *audio.SoundManager) (*window, error) {
	size := int(cfg.Board.CellSize)
	sprites, err := asset.Load(cfg, size)
	if err != nil {
		return nil, err
	}
	w, h := cfg.Board.Cols*size, cfg.Board.Rows*size
	win := &window{
		cfg:      cfg,
		seed:     seed,
		log:      log,
		sound:    sound,
		composer: render.NewComposer(render.NewTheme(cfg)),
		canvas:   raster.New(w, h, sprites),
		texture:  ebiten.NewImage(w, h),
	}
	return win, win.restart()
}

func (w *window) restart() error {
	opts := []engine.Option{engine.WithLogger(w.log)}
	if w.seed != 0 {
		opts = append(opts, engine.WithSeed(w.seed))
		w.seed++
	}
	s, err := engine.NewSession(w.cfg, opts...)
	if err != nil {
		return err
	}
	if w.sound != nil {
		s.OnEvent(w.sound.HandleEvent)
	}
	w.session = s
	return nil
}

func (w *window) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := w.restart(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if w.sound != nil {
			w.sound.ToggleMute()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		if a, _, ok := w.session.Hint(); ok {
			w.session.ClearSelection()
			w.session.Tap(a)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		size := int(w.cfg.Board.CellSize)
		if x >= 0 && y >= 0 {
			w.session.Tap(board.Coord{Col: x / size, Row: y / size})
		}
	}

	return w.session.Tick()
}

func (w *window) Draw(screen *ebiten.Image) {
	w.composer.Compose(w.canvas, render.BuildFrame(w.session, nil))
	w.texture.WritePixels(w.canvas.Image().Pix)
	screen.DrawImage(w.texture, nil)

	st := w.session.State()
	status := fmt.Sprintf("SCORE %d   TIME %d", st.Score, st.SecondsLeft)
	if w.sound != nil && w.sound.Muted() {
		status += "   MUTED"
	}
	ebitenutil.DebugPrintAt(screen, status, 6, 4)

	if st.Over {
		panel := w.composer.Panel(w.canvas)
		y := int(panel.Y + panel.H/2)
		ebitenutil.DebugPrintAt(screen, "TIME UP", 16, y-24)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Final score %d", st.Score), 16, y-8)
		ebitenutil.DebugPrintAt(screen, "R restart   Q quit", 16, y+8)
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := w.canvas.Bounds()
	return b.Dx(), b.Dy()
}
