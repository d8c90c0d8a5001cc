// SPDX-License-Identifier: EPL-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/loader"
)

var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix marks environment variables read by EnvOverlay.
const EnvPrefix = "SAMPLEBANK_"

// Defaults matches loader.DefaultOptions at a 48 kHz control rate.
func Defaults() Config {
	opts := loader.DefaultOptions()
	return Config{
		MediaRoot:            "media",
		FolderName:           catalog.ElementsFolder,
		ControlRateHz:        48000,
		RetryDelayCycles:     opts.RetryDelayCycles,
		MaxRetries:           opts.MaxRetries,
		RequestTimeoutCycles: opts.RequestTimeoutCycles,
		MountPollInterval:    Duration(500 * time.Millisecond),
		Logging:              Logging{Level: "info"},
	}
}

// unset is an overlay with nothing set.
func unset() Config {
	return Config{RetryDelayCycles: -1, MaxRetries: -1, RequestTimeoutCycles: -1}
}

// LoadJSON parses a Config overlay from raw, or from the file at path
// when raw is empty. Unknown fields are rejected.
func LoadJSON(path string, raw []byte) (Config, error) {
	cfg := unset()

	var r io.Reader
	switch {
	case len(raw) > 0:
		r = bytes.NewReader(raw)
	case path != "":
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		r = f
	default:
		return cfg, errors.New("no config source provided")
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// EnvOverlay builds an overlay from SAMPLEBANK_* variables. Unparsable
// numbers are reported, unknown keys ignored.
func EnvOverlay(environ []string) (Config, error) {
	over := unset()

	for _, kv := range environ {
		key, val, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		val = strings.TrimSpace(val)

		var err error
		switch strings.TrimPrefix(key, EnvPrefix) {
		case "MEDIA_ROOT":
			over.MediaRoot = val
		case "FOLDER_NAME":
			over.FolderName = val
		case "CONTROL_RATE_HZ":
			over.ControlRateHz, err = strconv.Atoi(val)
		case "RETRY_DELAY_CYCLES":
			over.RetryDelayCycles, err = strconv.Atoi(val)
		case "MAX_RETRIES":
			over.MaxRetries, err = strconv.Atoi(val)
		case "REQUEST_TIMEOUT_CYCLES":
			over.RequestTimeoutCycles, err = strconv.Atoi(val)
		case "MOUNT_POLL_INTERVAL":
			var d time.Duration
			d, err = time.ParseDuration(val)
			over.MountPollInterval = Duration(d)
		case "READ_LATENCY":
			var d time.Duration
			d, err = time.ParseDuration(val)
			over.ReadLatency = Duration(d)
		case "LOG_LEVEL":
			over.Logging.Level = val
		}
		if err != nil {
			return over, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
		}
	}

	return over, nil
}

// Merge returns base with every field set in over replacing it.
func Merge(base, over Config) Config {
	out := base

	if strings.TrimSpace(over.MediaRoot) != "" {
		out.MediaRoot = strings.TrimSpace(over.MediaRoot)
	}
	if strings.TrimSpace(over.FolderName) != "" {
		out.FolderName = strings.TrimSpace(over.FolderName)
	}
	if over.ControlRateHz != 0 {
		out.ControlRateHz = over.ControlRateHz
	}
	if over.RetryDelayCycles >= 0 {
		out.RetryDelayCycles = over.RetryDelayCycles
	}
	if over.MaxRetries >= 0 {
		out.MaxRetries = over.MaxRetries
	}
	if over.RequestTimeoutCycles >= 0 {
		out.RequestTimeoutCycles = over.RequestTimeoutCycles
	}
	if over.MountPollInterval != 0 {
		out.MountPollInterval = over.MountPollInterval
	}
	if over.ReadLatency != 0 {
		out.ReadLatency = over.ReadLatency
	}
	if lvl := strings.TrimSpace(over.Logging.Level); lvl != "" {
		out.Logging.Level = lvl
	}

	return out
}

// Validate checks a merged Config.
func Validate(cfg Config) error {
	switch {
	case cfg.MediaRoot == "":
		return fmt.Errorf("%w: media_root empty", ErrInvalidConfig)
	case cfg.FolderName == "":
		return fmt.Errorf("%w: folder_name empty", ErrInvalidConfig)
	case cfg.ControlRateHz <= 0:
		return fmt.Errorf("%w: control_rate_hz must be > 0", ErrInvalidConfig)
	case cfg.MountPollInterval <= 0:
		return fmt.Errorf("%w: mount_poll_interval must be > 0", ErrInvalidConfig)
	case cfg.ReadLatency < 0:
		return fmt.Errorf("%w: read_latency must be >= 0", ErrInvalidConfig)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, cfg.Logging.Level)
	}

	if err := cfg.LoaderOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoaderOptions is the loader's share of the configuration.
func (c Config) LoaderOptions() loader.Options {
	return loader.Options{
		Folder:               c.FolderName,
		RetryDelayCycles:     c.RetryDelayCycles,
		MaxRetries:           c.MaxRetries,
		RequestTimeoutCycles: c.RequestTimeoutCycles,
	}
}

// ControlPeriod is the time between two loader steps.
func (c Config) ControlPeriod() time.Duration {
	return time.Second / time.Duration(c.ControlRateHz)
}

// SlogLevel maps Logging.Level to a slog level. Unknown names are info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
