package board

import "github.com/lixenwraith/vi-match/vmath"

// Token is the gem slot bound to one grid cell
// Tokens live for the whole session; clearing and refill only rewrite Kind and visual state
type Token struct {
	Kind     Kind
	Col, Row int

	// Visual state in pixels, top-left of the sprite box
	Pos    vmath.Vec2
	Target vmath.Vec2

	Angle   float64 // radians, [0, 2π)
	Spin    float64 // radians per tick
	Opacity float64

	// Desaturated marks a matched token awaiting removal
	Desaturated bool
}

// Coord returns the logical cell of the token
func (t *Token) Coord() Coord {
	return Coord{Col: t.Col, Row: t.Row}
}

// Settled reports whether the token rests at its target
func (t *Token) Settled() bool {
	return t.Pos == t.Target
}
