package board

import (
	"fmt"

	"github.com/lixenwraith/vi-match/vmath"
)

// ApplyGravity compacts every column downward, preserving order, then refills vacated top cells
// Moved gems keep their current visual position and fall to their new row
// Refilled gems spawn above the top edge, stacked in the order they fall in
func (b *Board) ApplyGravity() {
	for c := 0; c < b.cols; c++ {
		col := b.grid[c]
		vacant := 0

		for r := b.rows - 1; r >= 0; r-- {
			src := col[r]
			if src.Kind.IsEmpty() {
				vacant++
				continue
			}
			if vacant == 0 {
				continue
			}

			dst := col[r+vacant]
			dst.Kind = src.Kind
			dst.Pos = src.Pos
			dst.Target = b.CellOrigin(dst.Coord())
			dst.Opacity = src.Opacity
			dst.Desaturated = false
			dst.Angle, src.Angle = src.Angle, dst.Angle
			dst.Spin, src.Spin = src.Spin, dst.Spin

			src.Kind = Empty
		}

		for r := 0; r < vacant; r++ {
			t := col[r]
			origin := b.CellOrigin(t.Coord())
			t.Kind = b.roll()
			t.Pos = vmath.V2(origin.X, -b.cellSize*float64(vacant-r))
			t.Target = origin
			t.Opacity = 1
			t.Desaturated = false
		}
	}
}

// Validate checks the post-gravity invariants: every cell occupied, targets at rest positions
func (b *Board) Validate() error {
	for t := range b.Tokens() {
		c := t.Coord()
		if t.Kind.IsEmpty() {
			return fmt.Errorf("%w: empty cell %s after refill", ErrInvariant, c)
		}
		if t.Target != b.CellOrigin(c) {
			return fmt.Errorf("%w: token %s targets %v", ErrInvariant, c, t.Target)
		}
	}
	return nil
}
