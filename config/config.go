// Package config holds every tunable of a session and loads overrides from TOML and environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-match/core"
	"github.com/lixenwraith/vi-match/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Duration decodes TOML strings such as "400ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the full tunable surface
type Config struct {
	Board     BoardConfig     `toml:"board"`
	Animation AnimationConfig `toml:"animation"`
	Timing    TimingConfig    `toml:"timing"`
	Particles ParticleConfig  `toml:"particles"`
	Audio     AudioConfig     `toml:"audio"`
	Display   DisplayConfig   `toml:"display"`
}

type BoardConfig struct {
	Cols           int     `toml:"cols"`
	Rows           int     `toml:"rows"`
	CellSize       float64 `toml:"cell_size"`
	Types          int     `toml:"types"`
	PointsPerToken int     `toml:"points_per_token"`
}

type AnimationConfig struct {
	Speed         float64 `toml:"speed"`
	SnapThreshold float64 `toml:"snap_threshold"`
	Rotation      bool    `toml:"rotation"`
	SpinMin       float64 `toml:"spin_min"`
	SpinMax       float64 `toml:"spin_max"`
}

type TimingConfig struct {
	TickRate     int      `toml:"tick_rate"`
	GameDuration Duration `toml:"game_duration"`
	SwapSettle   Duration `toml:"swap_settle"`
	MatchHold    Duration `toml:"match_hold"`
	ClearHold    Duration `toml:"clear_hold"`
	FallSettle   Duration `toml:"fall_settle"`
}

type ParticleConfig struct {
	Count    int     `toml:"count"`
	Speed    float64 `toml:"speed"`
	SizeMin  float64 `toml:"size_min"`
	SizeMax  float64 `toml:"size_max"`
	LifeStep float64 `toml:"life_step"`
	// Color is a hex color or "type" for the gem's own color
	Color string `toml:"color"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type DisplayConfig struct {
	Palette          []string `toml:"palette"`
	Background       string   `toml:"background"`
	TerminalCellSize int      `toml:"terminal_cell_size"`
	// Assets is a directory of gem0.png..gemN.png, empty selects procedural gems
	Assets string `toml:"assets"`
}

// Default returns the reference tuning
func Default() Config {
	return Config{
		Board: BoardConfig{
			Cols:           parameter.BoardCols,
			Rows:           parameter.BoardRows,
			CellSize:       parameter.CellSize,
			Types:          parameter.GemTypes,
			PointsPerToken: parameter.PointsPerGem,
		},
		Animation: AnimationConfig{
			Speed:         parameter.AnimationSpeed,
			SnapThreshold: parameter.SnapThreshold,
			Rotation:      true,
			SpinMin:       parameter.SpinMin,
			SpinMax:       parameter.SpinMax,
		},
		Timing: TimingConfig{
			TickRate:     parameter.TickRate,
			GameDuration: Duration{parameter.GameDuration},
			SwapSettle:   Duration{parameter.SwapSettle},
			MatchHold:    Duration{parameter.MatchHold},
			ClearHold:    Duration{parameter.ClearHold},
			FallSettle:   Duration{parameter.FallSettle},
		},
		Particles: ParticleConfig{
			Count:    parameter.ParticleCount,
			Speed:    parameter.ParticleSpeed,
			SizeMin:  parameter.ParticleSizeMin,
			SizeMax:  parameter.ParticleSizeMax,
			LifeStep: parameter.ParticleLifeStep,
			Color:    parameter.ParticleColor,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.MasterVolume,
		},
		Display: DisplayConfig{
			Palette:          append([]string(nil), parameter.GemPalette...),
			Background:       parameter.BackgroundColor,
			TerminalCellSize: parameter.TerminalCellSize,
		},
	}
}

// Instant returns a copy with every pacing delay zeroed and snapping animation
// The logical outcome of a session is unchanged, only its duration in ticks
func (c Config) Instant() Config {
	c.Timing.SwapSettle = Duration{}
	c.Timing.MatchHold = Duration{}
	c.Timing.ClearHold = Duration{}
	c.Timing.FallSettle = Duration{}
	c.Animation.Speed = 1
	return c
}

// Validate reports every out-of-range field, joined
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	b := c.Board
	check(b.Cols >= 1 && b.Cols <= parameter.MaxBoardSide, "board.cols %d out of range 1..%d", b.Cols, parameter.MaxBoardSide)
	check(b.Rows >= 1 && b.Rows <= parameter.MaxBoardSide, "board.rows %d out of range 1..%d", b.Rows, parameter.MaxBoardSide)
	check(b.CellSize > 0, "board.cell_size must be positive")
	check(b.Types >= parameter.MinGemTypes, "board.types %d: need at least %d to avoid forced matches", b.Types, parameter.MinGemTypes)
	check(b.Types <= 255, "board.types %d exceeds 255", b.Types)
	check(b.PointsPerToken >= 0, "board.points_per_token must not be negative")

	a := c.Animation
	check(a.Speed > 0 && a.Speed <= 1, "animation.speed %.3f out of range (0,1]", a.Speed)
	check(a.SnapThreshold > 0, "animation.snap_threshold must be positive")
	check(a.SpinMin >= 0 && a.SpinMin <= a.SpinMax, "animation.spin_min/spin_max must satisfy 0 <= min <= max")

	t := c.Timing
	check(t.TickRate > 0, "timing.tick_rate must be positive")
	check(t.GameDuration.Duration > 0, "timing.game_duration must be positive")
	delays := []struct {
		name string
		d    Duration
	}{
		{"swap_settle", t.SwapSettle},
		{"match_hold", t.MatchHold},
		{"clear_hold", t.ClearHold},
		{"fall_settle", t.FallSettle},
	}
	for _, delay := range delays {
		check(delay.d.Duration >= 0, "timing.%s must not be negative", delay.name)
	}

	p := c.Particles
	check(p.Count >= 0, "particles.count must not be negative")
	check(p.Speed >= 0, "particles.speed must not be negative")
	check(p.SizeMin > 0 && p.SizeMin <= p.SizeMax, "particles.size_min/size_max must satisfy 0 < min <= max")
	check(p.LifeStep > 0, "particles.life_step must be positive")
	if p.Color != parameter.ParticleColorByType {
		_, err := core.ParseHex(p.Color)
		check(err == nil, "particles.color %q is neither a hex color nor %q", p.Color, parameter.ParticleColorByType)
	}

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %.2f out of range 0..1", c.Audio.Volume)

	d := c.Display
	_, err := core.ParsePalette(d.Palette)
	check(err == nil, "display.palette: %v", err)
	if d.Assets == "" || p.Color == parameter.ParticleColorByType {
		check(len(d.Palette) >= b.Types, "display.palette has %d colors for %d types", len(d.Palette), b.Types)
	}
	_, err = core.ParseHex(d.Background)
	check(err == nil, "display.background %q is not a hex color", d.Background)
	check(d.TerminalCellSize >= 2, "display.terminal_cell_size must be at least 2")

	return errors.Join(errs...)
}

// Palette returns the parsed gem colors
func (c Config) Palette() []core.RGB {
	p, err := core.ParsePalette(c.Display.Palette)
	if err != nil {
		return nil
	}
	return p
}

// ParticleColors returns the particle color for each gem type
func (c Config) ParticleColors() []core.RGB {
	out := make([]core.RGB, c.Board.Types)
	if c.Particles.Color == parameter.ParticleColorByType {
		copy(out, c.Palette())
		return out
	}
	fixed, _ := core.ParseHex(c.Particles.Color)
	for i := range out {
		out[i] = fixed
	}
	return out
}
