package render

import (
	"image"
	"math"

	"github.com/lixenwraith/vi-match/vmath"
)

// Rect is a float pixel rectangle
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rectangle by d on every side
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Pixels returns the covering integer rectangle
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// Surface is the drawing backend a frame is composed onto
// Alpha arguments are straight opacities in 0..1
type Surface interface {
	Bounds() image.Rectangle
	Clear(c RGB)
	FillRect(r Rect, c RGB, alpha float64)
	StrokeRect(r Rect, width float64, c RGB)
	// DrawSprite draws sprite id scaled to size x size, rotated by angle around center
	DrawSprite(id int, center vmath.Vec2, size, angle, alpha float64)
	FillCircle(center vmath.Vec2, radius float64, c RGB, alpha float64)
	// ReadPixels returns a copy of the region, bounds preserved
	ReadPixels(r image.Rectangle) *image.NRGBA
	// WritePixels replaces the region img.Bounds() with img
	WritePixels(img *image.NRGBA)
}
