package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override, e.g. VI_MATCH_BOARD_COLS
const EnvPrefix = "VI_MATCH_"

// DotEnvFile is loaded before environment overrides when present
const DotEnvFile = ".env"

// Load returns defaults overlaid with the TOML file at path (skipped when empty),
// then the .env file, then VI_MATCH_* variables, validated
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode overlays a TOML document onto cfg, rejecting unknown keys
func (c *Config) Decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return undecoded(md)
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return fmt.Errorf("%w: %s: %s", ErrInvalid, path, perr.ErrorWithPosition())
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := undecoded(md); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(names, ", "))
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays VI_MATCH_<SECTION>_<KEY> variables, e.g. VI_MATCH_TIMING_GAME_DURATION=30s
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	var errs []error
	get := func(key string) (string, bool) {
		return lookup(EnvPrefix + key)
	}
	setInt := func(key string, dst *int) {
		if v, ok := get(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := get(key); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err))
				return
			}
			*dst = f
		}
	}
	setBool := func(key string, dst *bool) {
		if v, ok := get(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err))
				return
			}
			*dst = b
		}
	}
	setDuration := func(key string, dst *Duration) {
		if v, ok := get(key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err))
				return
			}
			dst.Duration = d
		}
	}
	setString := func(key string, dst *string) {
		if v, ok := get(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	setInt("BOARD_COLS", &c.Board.Cols)
	setInt("BOARD_ROWS", &c.Board.Rows)
	setFloat("BOARD_CELL_SIZE", &c.Board.CellSize)
	setInt("BOARD_TYPES", &c.Board.Types)
	setInt("BOARD_POINTS_PER_TOKEN", &c.Board.PointsPerToken)

	setFloat("ANIMATION_SPEED", &c.Animation.Speed)
	setFloat("ANIMATION_SNAP_THRESHOLD", &c.Animation.SnapThreshold)
	setBool("ANIMATION_ROTATION", &c.Animation.Rotation)
	setFloat("ANIMATION_SPIN_MIN", &c.Animation.SpinMin)
	setFloat("ANIMATION_SPIN_MAX", &c.Animation.SpinMax)

	setInt("TIMING_TICK_RATE", &c.Timing.TickRate)
	setDuration("TIMING_GAME_DURATION", &c.Timing.GameDuration)
	setDuration("TIMING_SWAP_SETTLE", &c.Timing.SwapSettle)
	setDuration("TIMING_MATCH_HOLD", &c.Timing.MatchHold)
	setDuration("TIMING_CLEAR_HOLD", &c.Timing.ClearHold)
	setDuration("TIMING_FALL_SETTLE", &c.Timing.FallSettle)

	setInt("PARTICLES_COUNT", &c.Particles.Count)
	setFloat("PARTICLES_SPEED", &c.Particles.Speed)
	setFloat("PARTICLES_SIZE_MIN", &c.Particles.SizeMin)
	setFloat("PARTICLES_SIZE_MAX", &c.Particles.SizeMax)
	setFloat("PARTICLES_LIFE_STEP", &c.Particles.LifeStep)
	setString("PARTICLES_COLOR", &c.Particles.Color)

	setBool("AUDIO_ENABLED", &c.Audio.Enabled)
	setFloat("AUDIO_VOLUME", &c.Audio.Volume)

	if v, ok := get("DISPLAY_PALETTE"); ok {
		var palette []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				palette = append(palette, s)
			}
		}
		c.Display.Palette = palette
	}
	setString("DISPLAY_BACKGROUND", &c.Display.Background)
	setInt("DISPLAY_TERMINAL_CELL_SIZE", &c.Display.TerminalCellSize)
	setString("DISPLAY_ASSETS", &c.Display.Assets)

	return errors.Join(errs...)
}
