package render

import (
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/parameter"
)

// Theme holds the colors and proportions of the board picture
type Theme struct {
	Background   RGB
	CheckerLight float64 // white overlay alpha on even cells
	CheckerDark  float64
	Selection    RGB
	Cursor       RGB
	InsetRatio   float64 // highlight inset per cell size
	StrokeRatio  float64 // highlight stroke per cell size
	PanelRatio   float64 // game-over panel height per surface height
	PanelAlpha   float64
}

// NewTheme derives the theme from display settings
func NewTheme(cfg config.Config) Theme {
	bg, err := core.ParseHex(cfg.Display.Background)
	if err != nil {
		bg = core.MustParseHex(parameter.BackgroundColor)
	}
	return Theme{
		Background:   bg,
		CheckerLight: parameter.CheckerLightAlpha,
		CheckerDark:  parameter.CheckerDarkAlpha,
		Selection:    RGBWhite,
		Cursor:       core.MustParseHex(parameter.CursorColor),
		InsetRatio:   parameter.SelectionInsetRatio,
		StrokeRatio:  parameter.SelectionStrokeRatio,
		PanelRatio:   parameter.OverlayPanelRatio,
		PanelAlpha:   parameter.OverlayAlpha,
	}
}

// Composer paints frames onto a surface
type Composer struct {
	theme Theme
}

func NewComposer(t Theme) *Composer {
	return &Composer{theme: t}
}

// Compose draws background, gems, highlights and particles, then the game-over treatment
func (c *Composer) Compose(s Surface, f Frame) {
	t := c.theme
	s.Clear(t.Background)

	for col := 0; col < f.Cols; col++ {
		for row := 0; row < f.Rows; row++ {
			alpha := t.CheckerDark
			if (col+row)%2 == 0 {
				alpha = t.CheckerLight
			}
			s.FillRect(Rect{
				X: float64(col) * f.CellSize,
				Y: float64(row) * f.CellSize,
				W: f.CellSize,
				H: f.CellSize,
			}, RGBWhite, alpha)
		}
	}

	for _, op := range f.Sprites {
		if op.Desaturated {
			// Drawn opaque, then grayed in screen space together with whatever lies under the box
			s.DrawSprite(op.ID, op.Center(), op.Size, op.Angle, 1)
			ApplyFilter(s, op.Box().Pixels(), Grayscale)
			continue
		}
		s.DrawSprite(op.ID, op.Center(), op.Size, op.Angle, op.Alpha)
	}

	inset := t.InsetRatio * f.CellSize
	stroke := max(t.StrokeRatio*f.CellSize, 1)
	if f.Cursor.Active {
		s.StrokeRect(cellBox(f.Cursor, f.CellSize).Inset(inset/2), stroke, t.Cursor)
	}
	if f.Selection.Active {
		s.StrokeRect(cellBox(f.Selection, f.CellSize).Inset(inset), stroke, t.Selection)
	}

	for _, p := range f.Particles {
		s.FillCircle(p.Pos, p.Radius, p.Color, p.Alpha)
	}

	if f.Over {
		ApplyFilter(s, s.Bounds(), Sepia)
		s.FillRect(c.Panel(s), RGBBlack, t.PanelAlpha)
	}
}

// Panel returns the game-over panel rectangle, centered vertically across the full width
func (c *Composer) Panel(s Surface) Rect {
	b := s.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	ph := h * c.theme.PanelRatio
	return Rect{X: float64(b.Min.X), Y: float64(b.Min.Y) + h/2 - ph/2, W: w, H: ph}
}

func cellBox(h Highlight, size float64) Rect {
	return Rect{X: h.Pos.X, Y: h.Pos.Y, W: size, H: size}
}
