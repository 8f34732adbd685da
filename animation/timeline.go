// Package animation advances the visual state of tokens and particles one tick at a time
package animation

import (
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/vmath"
)

// Params tunes token interpolation
type Params struct {
	Speed         float64 // lerp factor per tick
	SnapThreshold float64 // per-axis pixels
	Rotation      bool
	SpinMin       float64 // radians per tick
	SpinMax       float64
}

// Timeline moves every token toward its target at a fixed fraction per tick
type Timeline struct {
	params Params
}

func NewTimeline(p Params) *Timeline {
	return &Timeline{params: p}
}

// Attach assigns each token a random spin in [SpinMin, SpinMax)
func (t *Timeline) Attach(b *board.Board, rng board.Rand) {
	span := t.params.SpinMax - t.params.SpinMin
	for tok := range b.Tokens() {
		tok.Spin = t.params.SpinMin + rng.Float64()*span
	}
}

// Advance steps every token once and reports whether any position still differs from its target
func (t *Timeline) Advance(b *board.Board) bool {
	moving := false
	for tok := range b.Tokens() {
		if t.step(tok) {
			moving = true
		}
	}
	return moving
}

func (t *Timeline) step(tok *board.Token) bool {
	var mx, my bool
	tok.Pos.X, mx = vmath.Approach(tok.Pos.X, tok.Target.X, t.params.Speed, t.params.SnapThreshold)
	tok.Pos.Y, my = vmath.Approach(tok.Pos.Y, tok.Target.Y, t.params.Speed, t.params.SnapThreshold)

	// Matched gems freeze their rotation while they wait for removal
	if t.params.Rotation && !tok.Desaturated {
		tok.Angle = vmath.WrapAngle(tok.Angle + tok.Spin)
	}
	return mx || my
}
