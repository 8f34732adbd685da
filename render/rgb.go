package render

import "github.com/lixenwraith/vi-match/core"

// RGB is an alias to core.RGB so filters and backends share one color type
type RGB = core.RGB

// Predefined default colors
var (
	RGBBlack = core.RGBBlack
	RGBWhite = core.RGBWhite
)

// clamp converts float to uint8, saturating at both ends
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies all channels by factor
func Scale(c RGB, factor float64) RGB {
	// Clamp to not wrap on factor > 1.0
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// Grayscale converts RGB to grayscale using Rec. 601 luma coefficients
// Formula: Y = R*0.299 + G*0.587 + B*0.114
// Integer math: (R*299 + G*587 + B*114) / 1000, truncated, so gray input maps to itself
func Grayscale(c RGB) RGB {
	gray := uint8((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
	return RGB{R: gray, G: gray, B: gray}
}

// Sepia applies the classic sepia tone matrix, each channel saturating at 255
func Sepia(c RGB) RGB {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return RGB{
		R: clamp(0.393*r + 0.769*g + 0.189*b),
		G: clamp(0.349*r + 0.686*g + 0.168*b),
		B: clamp(0.272*r + 0.534*g + 0.131*b),
	}
}

// Lerp linearly interpolates between two colors
// t=0 returns a, t=1 returns b
func Lerp(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return RGB{
		R: uint8(float64(a.R) + t*float64(int(b.R)-int(a.R))),
		G: uint8(float64(a.G) + t*float64(int(b.G)-int(a.G))),
		B: uint8(float64(a.B) + t*float64(int(b.B)-int(a.B))),
	}
}
