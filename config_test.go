package warp

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cfg.Duration != 2.5 || cfg.FadeDelay != 1.5 || cfg.FadeDuration != 1 || cfg.RotationSmoothTime != 0.5 {
		t.Errorf("timings = %v/%v/%v/%v", cfg.Duration, cfg.FadeDelay, cfg.FadeDuration, cfg.RotationSmoothTime)
	}
	if cfg.Position.P2 != (Vec3{X: 0, Y: 4.3, Z: -5}) {
		t.Errorf("Position.P2 = %v", cfg.Position.P2)
	}
	if cfg.Target.P2 != (Vec3{X: 0, Y: 4.3, Z: -20}) {
		t.Errorf("Target.P2 = %v", cfg.Target.P2)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("duration: 4\nstart_position: {x: 1, y: 2, z: 3}\n"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Duration != 4 {
		t.Errorf("Duration = %v, want 4", cfg.Duration)
	}
	if cfg.StartPosition != (Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("StartPosition = %v, want (1, 2, 3)", cfg.StartPosition)
	}
	if cfg.FadeDelay != 1.5 || cfg.SpinSpeed != 0.3 {
		t.Errorf("untouched fields changed: fade_delay %v, spin_speed %v", cfg.FadeDelay, cfg.SpinSpeed)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig(nil): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty document = %+v, want defaults", cfg)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative duration": "duration: -1",
		"NaN delay":         "fade_delay: .nan",
		"infinite point":    "rest_target: {x: .inf, y: 0, z: 0}",
		"NaN pulse":         "pulse: {base: .nan}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig([]byte(doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigParseError(t *testing.T) {
	_, err := LoadConfig([]byte("duration: [1, 2"))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Errorf("parse error wrapped ErrInvalidConfig: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "parse config:") {
		t.Errorf("err = %q, want parse config prefix", err)
	}
}

func TestValidateNamesField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Overlay.OutDuration = math.Inf(1)
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) || !strings.Contains(err.Error(), "overlay.out_duration") {
		t.Errorf("err = %v, want ErrInvalidConfig naming overlay.out_duration", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.yaml")
	if err := os.WriteFile(path, []byte("duration: 3\nspin_speed: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Duration != 3 || cfg.SpinSpeed != 0.5 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join("examples", "portal", "portal.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("example config = %+v, want defaults", cfg)
	}
}
