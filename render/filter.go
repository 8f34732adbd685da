package render

import "image"

// Filter maps one color to another, alpha is never touched
type Filter func(RGB) RGB

// FilterBuffer rewrites every pixel of img in place
func FilterBuffer(img *image.NRGBA, f Filter) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for i := 0; i < b.Dx()*4; i += 4 {
			c := f(RGB{R: row[i], G: row[i+1], B: row[i+2]})
			row[i], row[i+1], row[i+2] = c.R, c.G, c.B
		}
	}
}

// GrayscaleBuffer desaturates img in place
func GrayscaleBuffer(img *image.NRGBA) {
	FilterBuffer(img, Grayscale)
}

// SepiaBuffer tones img in place
func SepiaBuffer(img *image.NRGBA) {
	FilterBuffer(img, Sepia)
}

// ApplyFilter snapshots a region of the surface, filters the copy and writes it back
// The region is clipped to the surface; an empty intersection is a no-op
func ApplyFilter(s Surface, r image.Rectangle, f Filter) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	snap := s.ReadPixels(r)
	FilterBuffer(snap, f)
	s.WritePixels(snap)
}
