package animation

import (
	"github.com/lixenwraith/vi-match/board"
	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/vmath"
)

// Particle is one spark of a clear burst
type Particle struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2
	Size  float64
	Life  float64 // 1 at spawn, removed at or below 0
	Color core.RGB
}

// Opacity is the draw alpha of the particle
func (p *Particle) Opacity() float64 {
	return p.Life
}

// ParticleParams tunes bursts
type ParticleParams struct {
	Count    int
	Speed    float64 // full velocity range per axis, centered on zero
	SizeMin  float64
	SizeMax  float64
	LifeStep float64
}

// Particles owns every live particle
type Particles struct {
	params ParticleParams
	live   []Particle
}

func NewParticles(p ParticleParams) *Particles {
	return &Particles{params: p, live: make([]Particle, 0, p.Count*8)}
}

// Spawn emits one burst at center
func (ps *Particles) Spawn(center vmath.Vec2, color core.RGB, rng board.Rand) {
	for range ps.params.Count {
		ps.live = append(ps.live, Particle{
			Pos: center,
			Vel: vmath.V2(
				(rng.Float64()-0.5)*ps.params.Speed,
				(rng.Float64()-0.5)*ps.params.Speed,
			),
			Size:  ps.params.SizeMin + rng.Float64()*(ps.params.SizeMax-ps.params.SizeMin),
			Life:  1,
			Color: color,
		})
	}
}

// Advance integrates positions, ages every particle and drops the expired ones in place
func (ps *Particles) Advance() {
	n := 0
	for i := range ps.live {
		p := ps.live[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= ps.params.LifeStep
		if p.Life <= 0 {
			continue
		}
		ps.live[n] = p
		n++
	}
	clear(ps.live[n:])
	ps.live = ps.live[:n]
}

// Len returns the live particle count
func (ps *Particles) Len() int {
	return len(ps.live)
}

// Each calls fn for every live particle in spawn order
func (ps *Particles) Each(fn func(p *Particle)) {
	for i := range ps.live {
		fn(&ps.live[i])
	}
}

// Reset drops every particle
func (ps *Particles) Reset() {
	ps.live = ps.live[:0]
}
