// Package board holds the gem grid: cell contents, adjacency, match detection and gravity
package board

import (
	"fmt"
	"iter"

	"github.com/lixenwraith/vi-match/vmath"
)

// MaxRerollPasses bounds the initial matchless fill
const MaxRerollPasses = 10000

// Rand is the random source the board draws gem types from
// *rand.Rand from math/rand/v2 satisfies it
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Geometry describes grid dimensions and the pixel size of one cell
type Geometry struct {
	Cols, Rows int
	CellSize   float64
}

// Board owns the column-major token grid, indexed [col][row], row 0 at the top
type Board struct {
	cols, rows int
	cellSize   float64
	types      int
	rng        Rand
	grid       [][]*Token
}

// New builds a board filled with random gems and rerolled until no match exists
func New(geo Geometry, types int, rng Rand) (*Board, error) {
	if geo.Cols < 1 || geo.Rows < 1 || geo.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cells of %.1fpx", ErrGeometry, geo.Cols, geo.Rows, geo.CellSize)
	}
	if types < 2 {
		return nil, fmt.Errorf("%w: %d type(s)", ErrPaletteTooSmall, types)
	}

	b := &Board{
		cols:     geo.Cols,
		rows:     geo.Rows,
		cellSize: geo.CellSize,
		types:    types,
		rng:      rng,
		grid:     make([][]*Token, geo.Cols),
	}

	for c := 0; c < b.cols; c++ {
		b.grid[c] = make([]*Token, b.rows)
		for r := 0; r < b.rows; r++ {
			origin := b.CellOrigin(Coord{Col: c, Row: r})
			b.grid[c][r] = &Token{
				Kind:    b.roll(),
				Col:     c,
				Row:     r,
				Pos:     origin,
				Target:  origin,
				Opacity: 1,
			}
		}
	}

	if err := b.rerollUntilNoMatch(); err != nil {
		return nil, err
	}
	return b, nil
}

// roll draws a uniformly random occupied kind
func (b *Board) roll() Kind {
	return Occupied(b.rng.IntN(b.types))
}

// rerollUntilNoMatch reassigns only matched cells until the board is matchless
// Each matched cell takes a kind that closes no run with its current neighbors when one exists
func (b *Board) rerollUntilNoMatch() error {
	safe := make([]Kind, 0, b.types)
	for pass := 0; pass < MaxRerollPasses; pass++ {
		m := b.Matches()
		if m.Len() == 0 {
			return nil
		}
		for _, c := range m.Cells() {
			safe = safe[:0]
			for typ := range b.types {
				if k := Occupied(typ); !b.closesRun(c, k) {
					safe = append(safe, k)
				}
			}
			if len(safe) == 0 {
				b.grid[c.Col][c.Row].Kind = b.roll()
				continue
			}
			b.grid[c.Col][c.Row].Kind = safe[b.rng.IntN(len(safe))]
		}
	}
	return fmt.Errorf("%w: %d passes with %d types", ErrRerollExhausted, MaxRerollPasses, b.types)
}

// closesRun reports whether placing k at c would put c inside a run of MinRun or more
func (b *Board) closesRun(c Coord, k Kind) bool {
	for _, d := range [2]Coord{{Col: 1}, {Row: 1}} {
		back := Coord{Col: -d.Col, Row: -d.Row}
		if 1+b.sameKindFrom(c, d, k)+b.sameKindFrom(c, back, k) >= MinRun {
			return true
		}
	}
	return false
}

// sameKindFrom counts consecutive cells of kind k stepping away from c, c excluded
func (b *Board) sameKindFrom(c, step Coord, k Kind) int {
	n := 0
	for p := c; ; n++ {
		p.Col += step.Col
		p.Row += step.Row
		if !b.InBounds(p) || b.Kind(p) != k {
			return n
		}
	}
}

func (b *Board) Cols() int { return b.cols }
func (b *Board) Rows() int { return b.rows }
func (b *Board) Types() int { return b.types }
func (b *Board) CellSize() float64 { return b.cellSize }
func (b *Board) Size() int { return b.cols * b.rows }
func (b *Board) Token(c Coord) *Token { return b.grid[c.Col][c.Row] }
func (b *Board) Kind(c Coord) Kind { return b.grid[c.Col][c.Row].Kind }

// SetKind overwrites the content of one cell
func (b *Board) SetKind(c Coord, k Kind) {
	b.grid[c.Col][c.Row].Kind = k
}

// InBounds reports whether the coordinate lies on the grid
func (b *Board) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < b.cols && c.Row >= 0 && c.Row < b.rows
}

// CellOrigin returns the resting pixel position of a cell
func (b *Board) CellOrigin(c Coord) vmath.Vec2 {
	return vmath.V2(float64(c.Col)*b.cellSize, float64(c.Row)*b.cellSize)
}

// CellCenter returns the pixel center of a cell at rest
func (b *Board) CellCenter(c Coord) vmath.Vec2 {
	half := b.cellSize / 2
	return b.CellOrigin(c).Add(vmath.V2(half, half))
}

// Tokens iterates all tokens column-major
func (b *Board) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for _, col := range b.grid {
			for _, t := range col {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// Settled reports whether every token rests at its target
func (b *Board) Settled() bool {
	for t := range b.Tokens() {
		if !t.Settled() {
			return false
		}
	}
	return true
}

// OccupiedCount returns the number of non-empty cells
func (b *Board) OccupiedCount() int {
	n := 0
	for t := range b.Tokens() {
		if !t.Kind.IsEmpty() {
			n++
		}
	}
	return n
}

// Swap exchanges the kinds of two cells together with their visual state
// Targets stay with the cells, so both gems slide into their new cell
func (b *Board) Swap(x, y Coord) {
	tx, ty := b.Token(x), b.Token(y)
	tx.Kind, ty.Kind = ty.Kind, tx.Kind
	tx.Pos, ty.Pos = ty.Pos, tx.Pos
	tx.Angle, ty.Angle = ty.Angle, tx.Angle
	tx.Spin, ty.Spin = ty.Spin, tx.Spin
}

// swapKinds exchanges kinds only, used for lookahead
func (b *Board) swapKinds(x, y Coord) {
	tx, ty := b.Token(x), b.Token(y)
	tx.Kind, ty.Kind = ty.Kind, tx.Kind
}
