package parameter

// Token Interpolation
const (
	// AnimationSpeed is the lerp factor applied per tick toward the target position
	AnimationSpeed = 0.2
	// SnapThreshold is the per-axis pixel distance below which a token snaps to its target
	SnapThreshold = 1.0
	// SpinMin and SpinMax bound the per-token rotation speed in radians per tick
	SpinMin = 0.002
	SpinMax = 0.007
)

// Particles
const (
	// ParticleCount is the number of particles spawned per cleared cell
	ParticleCount = 8
	// ParticleSpeed is the full velocity range per axis, centered on zero (pixels per tick)
	ParticleSpeed = 10.0
	// ParticleSizeMin and ParticleSizeMax bound particle radius in pixels
	ParticleSizeMin = 2.0
	ParticleSizeMax = 7.0
	// ParticleLifeStep is the life lost per tick, life starts at 1
	ParticleLifeStep = 0.05
	// ParticleColor is the default particle color, "type" uses the gem color
	ParticleColor = "#FFD700"
	// ParticleColorByType selects the per-gem particle color
	ParticleColorByType = "type"
)
