package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/config"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/render"
	"github.com/lixenwraith/vi-match/render/raster"
	"github.com/lixenwraith/vi-match/vmath"
)

var (
	red  = render.RGB{R: 255}
	blue = render.RGB{B: 255}
)

func solidSprites(colors ...render.RGB) []image.Image {
	out := make([]image.Image, len(colors))
	for i, c := range colors {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
			}
		}
		out[i] = img
	}
	return out
}

func newComposer() (*render.Composer, render.Theme) {
	theme := render.NewTheme(config.Default())
	return render.NewComposer(theme), theme
}

func emptyFrame() render.Frame {
	return render.Frame{Cols: 4, Rows: 4, CellSize: 32}
}

func assertNear(t *testing.T, want, got render.RGB) {
	t.Helper()
	assert.InDelta(t, int(want.R), int(got.R), 1, "R want %s got %s", want, got)
	assert.InDelta(t, int(want.G), int(got.G), 1, "G want %s got %s", want, got)
	assert.InDelta(t, int(want.B), int(got.B), 1, "B want %s got %s", want, got)
}

func TestComposeCheckerboard(t *testing.T) {
	comp, theme := newComposer()
	cv := raster.New(128, 128, nil)
	comp.Compose(cv, emptyFrame())

	light := theme.Background.Blend(render.RGBWhite, theme.CheckerLight)
	dark := theme.Background.Blend(render.RGBWhite, theme.CheckerDark)
	assertNear(t, light, cv.At(5, 5))
	assertNear(t, dark, cv.At(37, 5))
	assertNear(t, light, cv.At(37, 37))
}

func TestComposeDesaturatedSprite(t *testing.T) {
	comp, _ := newComposer()
	cv := raster.New(128, 128, solidSprites(red, blue))

	f := emptyFrame()
	f.Sprites = []render.SpriteOp{
		{ID: 0, Pos: vmath.V2(0, 0), Size: 32, Alpha: 1, Desaturated: true},
		{ID: 0, Pos: vmath.V2(32, 0), Size: 32, Alpha: 1},
		{ID: 1, Pos: vmath.V2(64, 0), Size: 32, Alpha: 0.4, Desaturated: true},
	}
	comp.Compose(cv, f)

	assert.Equal(t, render.Grayscale(red), cv.At(16, 16))
	assert.Equal(t, red, cv.At(48, 16))
	assert.Equal(t, render.Grayscale(blue), cv.At(80, 16), "desaturated gems draw opaque")
}

func TestComposeSelectionAndCursor(t *testing.T) {
	comp, theme := newComposer()
	cv := raster.New(128, 128, nil)

	f := emptyFrame()
	f.Selection = render.Highlight{Active: true, Cell: board.Coord{Col: 1, Row: 1}, Pos: vmath.V2(32, 32)}
	f.Cursor = render.Highlight{Active: true, Cell: board.Coord{Col: 3, Row: 3}, Pos: vmath.V2(96, 96)}
	comp.Compose(cv, f)

	inset := int(theme.InsetRatio * 32)
	assert.Equal(t, theme.Selection, cv.At(32+inset, 48))
	assert.NotEqual(t, theme.Selection, cv.At(48, 48), "highlight is an outline")
	assert.Equal(t, theme.Cursor, cv.At(96+inset/2, 112))
}

func TestComposeParticles(t *testing.T) {
	comp, _ := newComposer()
	cv := raster.New(128, 128, nil)

	f := emptyFrame()
	f.Particles = []render.ParticleOp{{Pos: vmath.V2(64, 64), Radius: 5, Color: blue, Alpha: 1}}
	comp.Compose(cv, f)
	assert.Equal(t, blue, cv.At(64, 64))
}

func TestComposeGameOver(t *testing.T) {
	comp, theme := newComposer()
	cv := raster.New(128, 128, solidSprites(red))

	f := emptyFrame()
	f.Over = true
	f.Sprites = []render.SpriteOp{{ID: 0, Pos: vmath.V2(0, 0), Size: 32, Alpha: 1}}
	comp.Compose(cv, f)

	assert.Equal(t, render.Sepia(red), cv.At(16, 16), "whole surface is toned")

	panel := comp.Panel(cv)
	assert.Equal(t, 0.0, panel.X)
	assert.Equal(t, 128.0, panel.W)
	assert.InDelta(t, 64.0, panel.Y+panel.H/2, 1e-9)

	light := render.Sepia(theme.Background.Blend(render.RGBWhite, theme.CheckerLight))
	dimmed := light.Blend(render.RGBBlack, theme.PanelAlpha)
	assertNear(t, dimmed, cv.At(69, 69))
}

func TestBuildFrame(t *testing.T) {
	s, err := engine.NewSession(config.Default(), engine.WithSeed(5))
	require.NoError(t, err)

	cursor := board.Coord{Col: 2, Row: 3}
	s.Tap(board.Coord{Col: 4, Row: 4})
	f := render.BuildFrame(s, &cursor)

	assert.Equal(t, 8, f.Cols)
	assert.Equal(t, 512.0, f.Width())
	assert.Equal(t, 512.0, f.Height())
	assert.Len(t, f.Sprites, 64)
	assert.Empty(t, f.Particles)
	assert.Equal(t, 60, f.SecondsLeft)
	assert.False(t, f.Over)

	require.True(t, f.Selection.Active)
	assert.Equal(t, board.Coord{Col: 4, Row: 4}, f.Selection.Cell)
	assert.Equal(t, vmath.V2(256, 256), f.Selection.Pos)
	require.True(t, f.Cursor.Active)
	assert.Equal(t, vmath.V2(128, 192), f.Cursor.Pos)

	for _, op := range f.Sprites {
		assert.GreaterOrEqual(t, op.ID, 0)
		assert.Less(t, op.ID, 6)
		assert.Equal(t, 1.0, op.Alpha)
	}

	outside := board.Coord{Col: 20, Row: 0}
	assert.False(t, render.BuildFrame(s, &outside).Cursor.Active)
}
