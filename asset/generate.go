package asset

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-match/core"
)

// Gem geometry as fractions of the sprite size, measured on a 64px reference
const (
	gemMargin      = 4.0 / 64.0  // ring between disc and sprite edge
	gemFocusOffset = 10.0 / 64.0 // highlight shift up and left of center
	gemFocusRadius = 5.0 / 64.0  // fully white core around the highlight
	gemColorStop   = 0.3         // gradient position of the base color
)

var (
	highlight = colorful.Color{R: 1, G: 1, B: 1}
	shadow    = colorful.Color{}
)

// Generate renders one shaded disc per palette color
// The radial gradient runs white at the highlight, the base color at 30%, black at the rim
func Generate(palette []core.RGB, size int) Set {
	set := make(Set, len(palette))
	for i, c := range palette {
		set[i] = Gem(c, size)
	}
	return set
}

// Gem renders a single sprite
func Gem(base core.RGB, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	cx, cy := s/2, s/2
	radius := s/2 - gemMargin*s
	fx, fy := cx-gemFocusOffset*s, cy-gemFocusOffset*s
	r0 := gemFocusRadius * s
	// Farthest rim point from the focus, so t reaches 1 at the shadow side
	span := radius + math.Hypot(cx-fx, cy-fy) - r0
	mid := base.Colorful()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5

			coverage := radius - math.Hypot(px-cx, py-cy) + 0.5
			if coverage <= 0 {
				continue
			}

			t := (math.Hypot(px-fx, py-fy) - r0) / span
			var col colorful.Color
			switch {
			case t <= 0:
				col = highlight
			case t < gemColorStop:
				col = highlight.BlendRgb(mid, t/gemColorStop)
			case t < 1:
				col = mid.BlendRgb(shadow, (t-gemColorStop)/(1-gemColorStop))
			default:
				col = shadow
			}

			rgb := core.FromColorful(col)
			img.SetNRGBA(x, y, color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: core.Alpha8(coverage)})
		}
	}
	return img
}
