// Package config holds the user-tunable settings: defaults, an optional
// TOML override file and the seed from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"curveswarm/internal/geom"
	"curveswarm/internal/swarm"
)

// Environment overrides.
const (
	EnvConfig = "CURVESWARM_CONFIG"
	EnvSeed   = "CURVESWARM_SEED"
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Settings is everything a user can tune without recompiling.
type Settings struct {
	ParticleCount       int        `toml:"particle_count"`
	AccentParticleCount int        `toml:"accent_particle_count"`
	RangeZ              geom.Range `toml:"range_z"`
	AccentPicks         int        `toml:"accent_picks"`
	AccentFade          float32    `toml:"accent_fade"`
	AccentRise          float32    `toml:"accent_rise"`
	AccentForce         float32    `toml:"accent_force"`
	ParticleSize        float32    `toml:"particle_size"`
	ParticleColor       string     `toml:"particle_color"`
	Background          string     `toml:"background"`

	// ImagePath feeds the image generator. Empty leaves it out.
	ImagePath string `toml:"image_path"`
	// ImageMaxSize bounds the long edge of the loaded image in pixels.
	ImageMaxSize int `toml:"image_max_size"`

	Audio        bool `toml:"audio"`
	Fullscreen   bool `toml:"fullscreen"`
	WindowWidth  int  `toml:"window_width"`
	WindowHeight int  `toml:"window_height"`

	// Seed drives every generator. Zero means seed from the clock.
	Seed uint64 `toml:"seed"`
}

// Default answers the stock settings.
func Default() Settings {
	return Settings{
		ParticleCount:       5000,
		AccentParticleCount: 10000,
		RangeZ:              geom.Range{Min: -80, Max: 0},
		AccentPicks:         swarm.AccentPicks,
		AccentFade:          0.002,
		AccentRise:          0.04,
		AccentForce:         0.01,
		ParticleSize:        0.6,
		ParticleColor:       "#ffffff",
		Background:          "#1cc714",
		ImageMaxSize:        256,
		Audio:               true,
		WindowWidth:         WindowWidth,
		WindowHeight:        WindowHeight,
	}
}

// Load starts from Default and applies the TOML file at path. A missing
// file is not an error; the defaults are answered as they are.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// FromEnv loads the file named by CURVESWARM_CONFIG and applies
// CURVESWARM_SEED. An unparsable seed is ignored.
func FromEnv() (Settings, error) {
	s, err := Load(os.Getenv(EnvConfig))
	if err != nil {
		return s, err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			s.Seed = seed
		}
	}
	return s, nil
}

// Validate rejects settings the animation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.ParticleCount < 1:
		return fmt.Errorf("particle_count %d: must be positive", s.ParticleCount)
	case s.AccentParticleCount < 0:
		return fmt.Errorf("accent_particle_count %d: must not be negative", s.AccentParticleCount)
	case s.AccentPicks < 0:
		return fmt.Errorf("accent_picks %d: must not be negative", s.AccentPicks)
	case s.RangeZ.Min >= s.RangeZ.Max:
		return fmt.Errorf("range_z %v..%v: min must be below max", s.RangeZ.Min, s.RangeZ.Max)
	case s.WindowWidth < 1 || s.WindowHeight < 1:
		return fmt.Errorf("window %dx%d: must be positive", s.WindowWidth, s.WindowHeight)
	}
	if _, err := colorful.Hex(s.Background); err != nil {
		return fmt.Errorf("background %q: %w", s.Background, err)
	}
	if _, err := colorful.Hex(s.ParticleColor); err != nil {
		return fmt.Errorf("particle_color %q: %w", s.ParticleColor, err)
	}
	return nil
}

// ResolveSeed answers Seed, or a clock-based seed when it is zero.
func (s Settings) ResolveSeed() uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(time.Now().UnixNano())
}

// BackgroundColor parses Background. Invalid colors fall back to black.
func (s Settings) BackgroundColor() colorful.Color {
	c, err := colorful.Hex(s.Background)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// SpriteColor parses ParticleColor. Invalid colors fall back to white.
func (s Settings) SpriteColor() colorful.Color {
	c, err := colorful.Hex(s.ParticleColor)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// View maps the settings onto the animation's configuration.
func (s Settings) View() swarm.ViewConfig {
	return swarm.ViewConfig{
		ParticleCount: s.ParticleCount,
		AccentCap:     s.AccentParticleCount,
		RangeZ:        s.RangeZ,
		AccentFade:    s.AccentFade,
		AccentRise:    s.AccentRise,
		AccentForce:   s.AccentForce,
	}
}
