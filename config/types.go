// SPDX-License-Identifier: EPL-2.0

// Package config holds the sample host configuration. A Config is built
// by layering Defaults, a JSON file and environment overrides with
// Merge, then checked with Validate.
package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// Config is the host configuration.
type Config struct {
	// MediaRoot is the directory treated as the removable card.
	MediaRoot string `json:"media_root"`
	// FolderName is the sample folder on the card.
	FolderName string `json:"folder_name"`
	// ControlRateHz is how often the loader is stepped.
	ControlRateHz int `json:"control_rate_hz"`

	// Cycle counts. -1 means unset in an overlay, since 0 is meaningful.
	RetryDelayCycles     int `json:"retry_delay_cycles"`
	MaxRetries           int `json:"max_retries"`
	RequestTimeoutCycles int `json:"request_timeout_cycles"`

	MountPollInterval Duration `json:"mount_poll_interval"`
	// ReadLatency slows every card read down, for testing.
	ReadLatency Duration `json:"read_latency"`

	Logging Logging `json:"logging"`
}

type Logging struct {
	// Level is debug, info, warn or error.
	Level string `json:"level"`
}

// Duration is a time.Duration written as a string such as "500ms".
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }
