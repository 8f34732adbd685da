package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-match/core"
)

// HalfBlock shows the top pixel as foreground over the bottom pixel as background
const HalfBlock = '▀'

// Screen draws pictures and text on a tcell screen
type Screen struct {
	tcell.Screen
	mode ColorMode
}

// New opens the terminal with mouse reporting on
func New(mode ColorMode) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	return Wrap(s, mode), nil
}

// Wrap uses an initialized screen, e.g. a simulation screen in tests
func Wrap(s tcell.Screen, mode ColorMode) *Screen {
	return &Screen{Screen: s, mode: mode}
}

func (s *Screen) Mode() ColorMode {
	return s.mode
}

// Style builds a cell style from two colors
func (s *Screen) Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(s.mode.Color(fg)).Background(s.mode.Color(bg))
}

// Present draws img with its top-left pixel at cell (x0, y0), two pixel rows per cell row
// An odd last row is paired with black
func (s *Screen) Present(img image.Image, x0, y0 int) {
	b := img.Bounds()
	for py := b.Min.Y; py < b.Max.Y; py += 2 {
		y := y0 + (py-b.Min.Y)/2
		for px := b.Min.X; px < b.Max.X; px++ {
			top := pixel(img, px, py)
			bottom := core.RGBBlack
			if py+1 < b.Max.Y {
				bottom = pixel(img, px, py+1)
			}
			s.SetContent(x0+px-b.Min.X, y, HalfBlock, nil, s.Style(top, bottom))
		}
	}
}

func pixel(img image.Image, x, y int) core.RGB {
	if rgba, ok := img.(*image.RGBA); ok {
		c := rgba.RGBAAt(x, y)
		return core.RGB{R: c.R, G: c.G, B: c.B}
	}
	r, g, b, _ := img.At(x, y).RGBA()
	return core.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// DrawText writes text from (x, y) honoring wide runes and returns the columns used
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.SetContent(col, y, r, nil, style)
		col += w
	}
	return col - x
}

// DrawCentered writes text centered in columns [x, x+width)
func (s *Screen) DrawCentered(x, width, y int, text string, style tcell.Style) {
	w := runewidth.StringWidth(text)
	if w > width {
		text = runewidth.Truncate(text, width, "…")
		w = runewidth.StringWidth(text)
	}
	s.DrawText(x+(width-w)/2, y, text, style)
}
