package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-match/render"
	"github.com/lixenwraith/vi-match/vmath"
)

var red = render.RGB{R: 255}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestClearAndFillRect(t *testing.T) {
	cv := New(16, 16, nil)
	cv.Clear(render.RGBBlack)
	cv.FillRect(render.Rect{X: 4, Y: 4, W: 4, H: 4}, red, 1)

	assert.Equal(t, render.RGBBlack, cv.At(0, 0))
	assert.Equal(t, red, cv.At(5, 5))
	assert.Equal(t, render.RGBBlack, cv.At(8, 8), "max edge is exclusive")

	cv.FillRect(render.Rect{X: 0, Y: 0, W: 2, H: 2}, render.RGBWhite, 0.5)
	got := cv.At(0, 0)
	assert.InDelta(t, 128, int(got.R), 1, "half white over black")
}

func TestStrokeRect(t *testing.T) {
	cv := New(20, 20, nil)
	cv.Clear(render.RGBBlack)
	cv.StrokeRect(render.Rect{X: 2, Y: 2, W: 10, H: 10}, 2, render.RGBWhite)

	assert.Equal(t, render.RGBWhite, cv.At(2, 2))
	assert.Equal(t, render.RGBWhite, cv.At(11, 6))
	assert.Equal(t, render.RGBWhite, cv.At(6, 11))
	assert.Equal(t, render.RGBBlack, cv.At(6, 6), "interior stays empty")
	assert.Equal(t, render.RGBBlack, cv.At(12, 12))
}

func TestDrawSpriteScalesToBox(t *testing.T) {
	cv := New(32, 32, []image.Image{solid(4, 4, color.NRGBA{R: 255, A: 255})})
	cv.Clear(render.RGBBlack)
	cv.DrawSprite(0, vmath.V2(16, 16), 16, 0, 1)

	assert.Equal(t, red, cv.At(16, 16))
	assert.Equal(t, red, cv.At(10, 10))
	assert.Equal(t, render.RGBBlack, cv.At(4, 4))
	assert.Equal(t, render.RGBBlack, cv.At(28, 16))
}

func TestDrawSpriteAlphaAndUnknownID(t *testing.T) {
	cv := New(32, 32, []image.Image{solid(8, 8, color.NRGBA{R: 255, A: 255})})
	cv.Clear(render.RGBBlack)
	cv.DrawSprite(0, vmath.V2(16, 16), 16, 0, 0.5)
	cv.DrawSprite(7, vmath.V2(4, 4), 8, 0, 1)

	got := cv.At(16, 16)
	assert.InDelta(t, 128, int(got.R), 2)
	assert.Zero(t, got.G)
	assert.Equal(t, render.RGBBlack, cv.At(4, 4))
}

func TestDrawSpriteRotation(t *testing.T) {
	// Left half red, right half blue; a half turn swaps the halves
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				src.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				src.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	cv := New(32, 32, []image.Image{src})
	cv.Clear(render.RGBBlack)
	cv.DrawSprite(0, vmath.V2(16, 16), 16, 3.141592653589793, 1)

	assert.Equal(t, uint8(255), cv.At(21, 16).R)
	assert.Equal(t, uint8(255), cv.At(10, 16).B)
}

func TestFillCircle(t *testing.T) {
	cv := New(20, 20, nil)
	cv.Clear(render.RGBBlack)
	cv.FillCircle(vmath.V2(10, 10), 4, red, 1)

	assert.Equal(t, red, cv.At(10, 10))
	assert.Equal(t, red, cv.At(12, 9))
	assert.Equal(t, render.RGBBlack, cv.At(6, 6), "corner of the bounding box")
	assert.Equal(t, render.RGBBlack, cv.At(15, 10))

	// Off-canvas circles are clipped
	cv.FillCircle(vmath.V2(-50, -50), 3, red, 1)
}

func TestReadWritePixelsRoundTrip(t *testing.T) {
	cv := New(8, 8, nil)
	cv.Clear(render.RGB{R: 10, G: 20, B: 30})

	r := image.Rect(2, 2, 6, 6)
	snap := cv.ReadPixels(r)
	require.Equal(t, r, snap.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, snap.NRGBAAt(3, 3))

	snap.SetNRGBA(3, 3, color.NRGBA{R: 200, A: 255})
	cv.WritePixels(snap)
	assert.Equal(t, render.RGB{R: 200}, cv.At(3, 3))
	assert.Equal(t, render.RGB{R: 10, G: 20, B: 30}, cv.At(1, 1))
}

func TestApplyFilterOnCanvas(t *testing.T) {
	cv := New(8, 8, nil)
	cv.Clear(render.RGB{R: 200, G: 100, B: 50})
	render.ApplyFilter(cv, image.Rect(0, 0, 4, 8), render.Grayscale)

	gray := render.Grayscale(render.RGB{R: 200, G: 100, B: 50})
	assert.Equal(t, gray, cv.At(0, 0))
	assert.Equal(t, gray, cv.At(3, 7))
	assert.Equal(t, render.RGB{R: 200, G: 100, B: 50}, cv.At(4, 0))

	// Regions past the edge are clipped, not rejected
	render.ApplyFilter(cv, image.Rect(6, 6, 40, 40), render.Sepia)
	assert.Equal(t, render.Sepia(render.RGB{R: 200, G: 100, B: 50}), cv.At(7, 7))
}
