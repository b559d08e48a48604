package warp

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// PulseConfig describes the portal's emissive flicker:
// Base + sin(Frequency·t)·Amplitude.
type PulseConfig struct {
	Base      float64 `yaml:"base"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// OverlayConfig times the fullscreen transition overlay. Showing waits
// InDelay seconds and then fades in over InDuration; hiding fades out over
// OutDuration.
type OverlayConfig struct {
	InDelay     float64 `yaml:"in_delay"`
	InDuration  float64 `yaml:"in_duration"`
	OutDuration float64 `yaml:"out_duration"`
}

// Config holds the timings and waypoints of a portal transition. All times
// are in seconds.
type Config struct {
	// Duration is the fixed length of one run.
	Duration float64 `yaml:"duration"`
	// FadeDelay is the elapsed time after which the gain starts to ramp down.
	FadeDelay float64 `yaml:"fade_delay"`
	// FadeDuration is the length of the gain ramp from 1 to 0.
	FadeDuration float64 `yaml:"fade_duration"`
	// RotationSmoothTime is the damping time constant for the model rotation.
	RotationSmoothTime float64 `yaml:"rotation_smooth_time"`

	// RestTarget is the look-at target captured as the target curve's start.
	RestTarget Vec3 `yaml:"rest_target"`
	// StartPosition is the camera's rest position before any run.
	StartPosition Vec3 `yaml:"start_position"`
	// Position and Target are the fixed waypoints for the camera position
	// and its look-at target.
	Position Curve `yaml:"position"`
	Target   Curve `yaml:"target"`

	// SpinSpeed is the idle rotation speed about Y in radians per second.
	SpinSpeed float64       `yaml:"spin_speed"`
	Pulse     PulseConfig   `yaml:"pulse"`
	Overlay   OverlayConfig `yaml:"overlay"`
}

// DefaultConfig returns the stock portal transition: a 2.5 s dive from
// (0, 4.3, 12) through the portal plane to (0, 4.3, -5).
func DefaultConfig() Config {
	return Config{
		Duration:           2.5,
		FadeDelay:          1.5,
		FadeDuration:       1.0,
		RotationSmoothTime: 0.5,
		RestTarget:         Vec3{X: 0, Y: 4.3, Z: 0},
		StartPosition:      Vec3{X: 0, Y: 4.3, Z: 12},
		Position: Curve{
			P1: Vec3{X: 0, Y: 4.3, Z: 12},
			P2: Vec3{X: 0, Y: 4.3, Z: -5},
		},
		Target: Curve{
			P1: Vec3{X: 0, Y: 4.3, Z: 0},
			P2: Vec3{X: 0, Y: 4.3, Z: -20},
		},
		SpinSpeed: 0.3,
		Pulse:     PulseConfig{Base: 10, Amplitude: 8, Frequency: 3},
		Overlay:   OverlayConfig{InDelay: 1.5, InDuration: 0.5, OutDuration: 1.0},
	}
}

// Validate checks that durations are non-negative and that no field is NaN
// or infinite. A zero Duration is valid and completes a run on its first tick.
func (c Config) Validate() error {
	durations := []struct {
		name string
		v    float64
	}{
		{"duration", c.Duration},
		{"fade_delay", c.FadeDelay},
		{"fade_duration", c.FadeDuration},
		{"rotation_smooth_time", c.RotationSmoothTime},
		{"overlay.in_delay", c.Overlay.InDelay},
		{"overlay.in_duration", c.Overlay.InDuration},
		{"overlay.out_duration", c.Overlay.OutDuration},
	}
	for _, d := range durations {
		if !finite(d.v) || d.v < 0 {
			return fmt.Errorf("%w: %s must be a finite, non-negative number of seconds, got %v", ErrInvalidConfig, d.name, d.v)
		}
	}

	points := []struct {
		name string
		v    Vec3
	}{
		{"rest_target", c.RestTarget},
		{"start_position", c.StartPosition},
		{"position.p1", c.Position.P1},
		{"position.p2", c.Position.P2},
		{"target.p1", c.Target.P1},
		{"target.p2", c.Target.P2},
	}
	for _, p := range points {
		if !finite(p.v.X) || !finite(p.v.Y) || !finite(p.v.Z) {
			return fmt.Errorf("%w: %s has a non-finite component: %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	for _, s := range []struct {
		name string
		v    float64
	}{
		{"spin_speed", c.SpinSpeed},
		{"pulse.base", c.Pulse.Base},
		{"pulse.amplitude", c.Pulse.Amplitude},
		{"pulse.frequency", c.Pulse.Frequency},
	} {
		if math.IsNaN(s.v) || math.IsInf(s.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, s.name, s.v)
		}
	}
	return nil
}

// LoadConfig parses YAML on top of DefaultConfig, so a document only needs
// the fields it changes, and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := LoadConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
