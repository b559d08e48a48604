package warp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watchTimeout = 3 * time.Second

func newWatchedConfig(t *testing.T, doc string) (string, *ConfigWatcher) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cw, err := NewConfigWatcher(path)
	if err != nil {
		t.Fatalf("NewConfigWatcher: %v", err)
	}
	t.Cleanup(func() { cw.Close() })
	return path, cw
}

func TestConfigWatcherReloads(t *testing.T) {
	path, cw := newWatchedConfig(t, "duration: 2\n")
	if err := os.WriteFile(path, []byte("duration: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-cw.Configs:
		if cfg.Duration != 3 {
			t.Errorf("Duration = %v, want 3", cfg.Duration)
		}
	case err := <-cw.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for reload")
	}
}

func TestConfigWatcherReportsInvalid(t *testing.T) {
	path, cw := newWatchedConfig(t, "duration: 2\n")
	if err := os.WriteFile(path, []byte("duration: -4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-cw.Configs:
		t.Fatalf("invalid config delivered: %+v", cfg)
	case err := <-cw.Errors:
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	case <-time.After(watchTimeout):
		t.Fatal("timed out waiting for error")
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	path, cw := newWatchedConfig(t, "duration: 2\n")
	other := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(other, []byte("duration: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-cw.Configs:
		t.Fatalf("reloaded on an unrelated file: %+v", cfg)
	case <-time.After(4 * reloadDebounce):
	}
}

func TestConfigWatcherCloseIdempotent(t *testing.T) {
	_, cw := newWatchedConfig(t, "duration: 2\n")
	if err := cw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, ok := <-cw.Configs; ok {
		t.Error("Configs still open after Close")
	}
	if _, ok := <-cw.Errors; ok {
		t.Error("Errors still open after Close")
	}
}

func TestNewConfigWatcherMissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "portal.yaml"))
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}
