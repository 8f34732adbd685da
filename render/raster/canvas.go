// Package raster implements render.Surface in software over an RGBA image
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/lixenwraith/vi-match/render"
	"github.com/lixenwraith/vi-match/vmath"
)

// Canvas is a CPU surface; the terminal frontend and tests draw through it
type Canvas struct {
	img     *image.RGBA
	sprites []image.Image
	scaler  draw.Transformer
}

var _ render.Surface = (*Canvas)(nil)

// New allocates a w x h canvas drawing sprites by index
func New(w, h int, sprites []image.Image) *Canvas {
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		sprites: sprites,
		scaler:  draw.BiLinear,
	}
}

// Image exposes the backing pixels
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At returns the color of one pixel, opaque canvases only
func (c *Canvas) At(x, y int) render.RGB {
	px := c.img.RGBAAt(x, y)
	return render.RGB{R: px.R, G: px.G, B: px.B}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) Clear(col render.RGB) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA(1)), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r render.Rect, col render.RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	dst := r.Pixels().Intersect(c.img.Bounds())
	draw.Draw(c.img, dst, image.NewUniform(col.NRGBA(alpha)), image.Point{}, draw.Over)
}

func (c *Canvas) StrokeRect(r render.Rect, width float64, col render.RGB) {
	top := render.Rect{X: r.X, Y: r.Y, W: r.W, H: width}
	bottom := render.Rect{X: r.X, Y: r.Y + r.H - width, W: r.W, H: width}
	left := render.Rect{X: r.X, Y: r.Y + width, W: width, H: r.H - 2*width}
	right := render.Rect{X: r.X + r.W - width, Y: r.Y + width, W: width, H: r.H - 2*width}
	for _, edge := range []render.Rect{top, bottom, left, right} {
		if edge.W > 0 && edge.H > 0 {
			c.FillRect(edge, col, 1)
		}
	}
}

// DrawSprite scales the sprite to size and rotates it about center with bilinear sampling
func (c *Canvas) DrawSprite(id int, center vmath.Vec2, size, angle, alpha float64) {
	if id < 0 || id >= len(c.sprites) || alpha <= 0 {
		return
	}
	src := c.sprites[id]
	sb := src.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	kx, ky := size/sw, size/sh
	sin, cos := math.Sincos(angle)
	// dst = center + R(angle) * K * (src - srcCenter - srcMin)
	ox, oy := float64(sb.Min.X)+sw/2, float64(sb.Min.Y)+sh/2
	m := f64.Aff3{
		cos * kx, -sin * ky, center.X - (cos*kx*ox - sin*ky*oy),
		sin * kx, cos * ky, center.Y - (sin*kx*ox + cos*ky*oy),
	}

	var opts *draw.Options
	if alpha < 1 {
		opts = &draw.Options{SrcMask: image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})}
	}
	c.scaler.Transform(c.img, m, src, sb, draw.Over, opts)
}

func (c *Canvas) FillCircle(center vmath.Vec2, radius float64, col render.RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	mask := &disc{cx: center.X, cy: center.Y, r: radius}
	dst := mask.Bounds().Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.DrawMask(c.img, dst, image.NewUniform(col.NRGBA(alpha)), image.Point{}, mask, dst.Min, draw.Over)
}

func (c *Canvas) ReadPixels(r image.Rectangle) *image.NRGBA {
	r = r.Intersect(c.img.Bounds())
	out := image.NewNRGBA(r)
	draw.Draw(out, r, c.img, r.Min, draw.Src)
	return out
}

func (c *Canvas) WritePixels(img *image.NRGBA) {
	r := img.Bounds().Intersect(c.img.Bounds())
	draw.Draw(c.img, r, img, r.Min, draw.Src)
}

// disc is an anti-aliasing-free circle mask sampled at pixel centers
type disc struct {
	cx, cy, r float64
}

func (d *disc) ColorModel() color.Model {
	return color.AlphaModel
}

func (d *disc) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(d.cx-d.r)), int(math.Floor(d.cy-d.r)),
		int(math.Ceil(d.cx+d.r)), int(math.Ceil(d.cy+d.r)),
	)
}

func (d *disc) At(x, y int) color.Color {
	dx, dy := float64(x)+0.5-d.cx, float64(y)+0.5-d.cy
	if dx*dx+dy*dy <= d.r*d.r {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}
