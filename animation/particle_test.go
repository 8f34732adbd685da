package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/vmath"
)

var burst = ParticleParams{Count: 8, Speed: 10, SizeMin: 2, SizeMax: 7, LifeStep: 0.05}

func TestSpawn(t *testing.T) {
	ps := NewParticles(burst)
	center := vmath.V2(96, 32)
	gold := core.RGB{R: 255, G: 215}
	ps.Spawn(center, gold, newRand(1))

	require.Equal(t, 8, ps.Len())
	ps.Each(func(p *Particle) {
		assert.Equal(t, center, p.Pos)
		assert.Equal(t, 1.0, p.Life)
		assert.Equal(t, 1.0, p.Opacity())
		assert.Equal(t, gold, p.Color)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.Less(t, p.Size, 7.0)
		assert.LessOrEqual(t, p.Vel.X, 5.0)
		assert.GreaterOrEqual(t, p.Vel.X, -5.0)
		assert.LessOrEqual(t, p.Vel.Y, 5.0)
		assert.GreaterOrEqual(t, p.Vel.Y, -5.0)
	})
}

func TestAdvanceIntegratesAndExpires(t *testing.T) {
	ps := NewParticles(ParticleParams{Count: 1, Speed: 10, SizeMin: 2, SizeMax: 3, LifeStep: 0.25})
	ps.Spawn(vmath.V2(0, 0), core.RGBWhite, newRand(2))

	var vel vmath.Vec2
	ps.Each(func(p *Particle) { vel = p.Vel })

	ps.Advance()
	ps.Each(func(p *Particle) {
		assert.Equal(t, vel, p.Pos)
		assert.InDelta(t, 0.75, p.Life, 1e-9)
	})

	ps.Advance()
	ps.Advance()
	assert.Equal(t, 1, ps.Len())
	ps.Advance()
	assert.Zero(t, ps.Len(), "life reaching zero removes the particle")
}

func TestAdvanceKeepsOrderAcrossRemovals(t *testing.T) {
	ps := NewParticles(ParticleParams{Count: 1, Speed: 0, SizeMin: 1, SizeMax: 1, LifeStep: 0.5})
	ps.Spawn(vmath.V2(0, 0), core.RGBWhite, newRand(1))
	ps.Advance() // first burst at life 0.5
	ps.Spawn(vmath.V2(1, 0), core.RGBWhite, newRand(1))
	ps.Spawn(vmath.V2(2, 0), core.RGBWhite, newRand(1))
	ps.Advance() // first expires, others at 0.5

	require.Equal(t, 2, ps.Len())
	var xs []float64
	ps.Each(func(p *Particle) { xs = append(xs, p.Pos.X) })
	assert.Equal(t, []float64{1, 2}, xs)

	ps.Reset()
	assert.Zero(t, ps.Len())
}
