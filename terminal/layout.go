package terminal

import "image"

// Layout places a picture of W x H pixels on the terminal grid
// Row Y-1 holds the status line and row Y+Rows() the help line
type Layout struct {
	X, Y int
	W, H int
}

// NewLayout centers the picture and its two text rows
func NewLayout(termW, termH, w, h int) Layout {
	l := Layout{W: w, H: h}
	l.X = max((termW-w)/2, 0)
	l.Y = max((termH-l.Rows()-2)/2, 0) + 1
	return l
}

// Rows is the number of cell rows the picture takes
func (l Layout) Rows() int {
	return (l.H + 1) / 2
}

// Fits reports whether picture and text rows are fully visible
func (l Layout) Fits(termW, termH int) bool {
	return termW >= l.W && termH >= l.Rows()+2
}

// Pixel maps a terminal cell to the top pixel it shows
func (l Layout) Pixel(x, y int) (image.Point, bool) {
	p := image.Pt(x-l.X, (y-l.Y)*2)
	if p.X < 0 || p.Y < 0 || p.X >= l.W || p.Y >= l.H {
		return image.Point{}, false
	}
	return p, true
}

// Row converts a pixel row to the cell row showing it
func (l Layout) Row(py int) int {
	return l.Y + py/2
}
