// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(Defaults()) = %v", err)
	}
	if cfg.FolderName != "elements" || cfg.ControlRateHz != 48000 || cfg.MaxRetries != 3 {
		t.Fatalf("Defaults() = %+v", cfg)
	}
	if cfg.ControlPeriod() != time.Second/48000 {
		t.Fatalf("ControlPeriod() = %v", cfg.ControlPeriod())
	}
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"media_root": "/mnt/sd",
		"retry_delay_cycles": 0,
		"mount_poll_interval": "250ms",
		"logging": {"level": "debug"}
	}`)
	over, err := LoadJSON("", raw)
	if err != nil {
		t.Fatalf("LoadJSON() = %v", err)
	}

	cfg := Merge(Defaults(), over)
	if cfg.MediaRoot != "/mnt/sd" {
		t.Errorf("MediaRoot = %q", cfg.MediaRoot)
	}
	if cfg.RetryDelayCycles != 0 {
		t.Errorf("explicit zero retry delay lost: %d", cfg.RetryDelayCycles)
	}
	if cfg.MaxRetries != 3 || cfg.RequestTimeoutCycles != 480000 {
		t.Errorf("unset fields overwritten: %+v", cfg)
	}
	if cfg.MountPollInterval.Std() != 250*time.Millisecond {
		t.Errorf("MountPollInterval = %v", cfg.MountPollInterval.Std())
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v", cfg.SlogLevel())
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadJSON_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "host.json")
	if err := os.WriteFile(path, []byte(`{"folder_name": "custom"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	over, err := LoadJSON(path, nil)
	if err != nil {
		t.Fatalf("LoadJSON() = %v", err)
	}
	if got := Merge(Defaults(), over).FolderName; got != "custom" {
		t.Fatalf("FolderName = %q", got)
	}

	if _, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), nil); err == nil {
		t.Fatal("LoadJSON() of a missing file succeeded")
	}
	if _, err := LoadJSON("", nil); err == nil {
		t.Fatal("LoadJSON() with no source succeeded")
	}
}

func TestLoadJSON_Rejects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		`{"media_rot": "x"}`,
		`{"mount_poll_interval": 5}`,
		`{"mount_poll_interval": "soon"}`,
		`{"max_retries": "3"}`,
	} {
		if _, err := LoadJSON("", []byte(raw)); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("LoadJSON(%s) = %v, want ErrInvalidConfig", raw, err)
		}
	}
}

func TestEnvOverlay(t *testing.T) {
	t.Parallel()

	over, err := EnvOverlay([]string{
		"HOME=/root",
		"SAMPLEBANK_MEDIA_ROOT=/media/card",
		"SAMPLEBANK_MAX_RETRIES=7",
		"SAMPLEBANK_REQUEST_TIMEOUT_CYCLES=0",
		"SAMPLEBANK_READ_LATENCY=2ms",
		"SAMPLEBANK_LOG_LEVEL=warn",
		"SAMPLEBANK_UNKNOWN=1",
	})
	if err != nil {
		t.Fatalf("EnvOverlay() = %v", err)
	}

	cfg := Merge(Defaults(), over)
	if cfg.MediaRoot != "/media/card" || cfg.MaxRetries != 7 || cfg.RequestTimeoutCycles != 0 {
		t.Fatalf("merged = %+v", cfg)
	}
	if cfg.RetryDelayCycles != 48000 {
		t.Fatalf("RetryDelayCycles = %d, want default", cfg.RetryDelayCycles)
	}
	if cfg.ReadLatency.Std() != 2*time.Millisecond || cfg.SlogLevel() != slog.LevelWarn {
		t.Fatalf("latency %v, level %v", cfg.ReadLatency.Std(), cfg.SlogLevel())
	}

	if _, err := EnvOverlay([]string{"SAMPLEBANK_MAX_RETRIES=lots"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("EnvOverlay(bad number) = %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no root", func(c *Config) { c.MediaRoot = "" }},
		{"no folder", func(c *Config) { c.FolderName = "" }},
		{"zero rate", func(c *Config) { c.ControlRateHz = 0 }},
		{"zero poll", func(c *Config) { c.MountPollInterval = 0 }},
		{"negative latency", func(c *Config) { c.ReadLatency = -1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"no retries", func(c *Config) { c.MaxRetries = 0 }},
		{"negative delay", func(c *Config) { c.RetryDelayCycles = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Defaults()
			tt.mutate(&cfg)
			if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoaderOptions(t *testing.T) {
	t.Parallel()

	cfg := Defaults()
	cfg.FolderName = "x"
	opts := cfg.LoaderOptions()
	if opts.Folder != "x" || opts.MaxRetries != cfg.MaxRetries || opts.RetryDelayCycles != cfg.RetryDelayCycles {
		t.Fatalf("LoaderOptions() = %+v", opts)
	}
}
