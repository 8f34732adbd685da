package render

import (
	"github.com/lixenwraith/vi-match/animation"
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/engine"
	"github.com/lixenwraith/vi-match/vmath"
)

// SpriteOp draws one gem
type SpriteOp struct {
	ID          int        // gem type, indexes the sprite set
	Pos         vmath.Vec2 // top-left of the sprite box
	Size        float64
	Angle       float64
	Alpha       float64
	Desaturated bool
}

// Center returns the rotation pivot
func (op SpriteOp) Center() vmath.Vec2 {
	return op.Pos.Add(vmath.V2(op.Size/2, op.Size/2))
}

// Box returns the sprite's unrotated rectangle
func (op SpriteOp) Box() Rect {
	return Rect{X: op.Pos.X, Y: op.Pos.Y, W: op.Size, H: op.Size}
}

// ParticleOp draws one spark
type ParticleOp struct {
	Pos    vmath.Vec2
	Radius float64
	Color  RGB
	Alpha  float64
}

// Highlight marks a cell outline drawn at a gem's current visual position
type Highlight struct {
	Active bool
	Cell   board.Coord
	Pos    vmath.Vec2
}

// Frame is everything a backend needs for one picture, detached from the session
type Frame struct {
	Cols, Rows int
	CellSize   float64

	Sprites   []SpriteOp
	Particles []ParticleOp
	Selection Highlight
	Cursor    Highlight

	Score       int
	SecondsLeft int
	Over        bool
}

// Width and Height are the board extent in pixels
func (f *Frame) Width() float64 { return float64(f.Cols) * f.CellSize }
func (f *Frame) Height() float64 { return float64(f.Rows) * f.CellSize }

// BuildFrame captures the session; cursor is optional keyboard focus
func BuildFrame(s *engine.Session, cursor *board.Coord) Frame {
	b := s.Board()
	st := s.State()
	f := Frame{
		Cols:        b.Cols(),
		Rows:        b.Rows(),
		CellSize:    b.CellSize(),
		Sprites:     make([]SpriteOp, 0, b.Size()),
		Score:       st.Score,
		SecondsLeft: st.SecondsLeft,
		Over:        st.Over,
	}

	for tok := range b.Tokens() {
		typ, ok := tok.Kind.Type()
		if !ok {
			continue
		}
		f.Sprites = append(f.Sprites, SpriteOp{
			ID:          typ,
			Pos:         tok.Pos,
			Size:        f.CellSize,
			Angle:       tok.Angle,
			Alpha:       tok.Opacity,
			Desaturated: tok.Desaturated,
		})
	}

	ps := s.Particles()
	f.Particles = make([]ParticleOp, 0, ps.Len())
	ps.Each(func(p *animation.Particle) {
		f.Particles = append(f.Particles, ParticleOp{
			Pos:    p.Pos,
			Radius: p.Size,
			Color:  p.Color,
			Alpha:  p.Opacity(),
		})
	})

	if sel, ok := s.Selection(); ok {
		f.Selection = Highlight{Active: true, Cell: sel, Pos: b.Token(sel).Pos}
	}
	if cursor != nil && b.InBounds(*cursor) {
		f.Cursor = Highlight{Active: true, Cell: *cursor, Pos: b.CellOrigin(*cursor)}
	}
	return f
}
