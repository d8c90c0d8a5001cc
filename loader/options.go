// SPDX-License-Identifier: EPL-2.0

package loader

import "fmt"

// Options tunes retry and timeout behavior. Durations are in Step calls.
type Options struct {
	// Folder overrides the catalog's folder name when set.
	Folder string
	// RetryDelayCycles is the cooldown after a failure.
	RetryDelayCycles int
	// MaxRetries is the number of failed attempts after which Failed is
	// permanent.
	MaxRetries int
	// RequestTimeoutCycles fails a read that has been pending this many
	// steps. Zero waits forever.
	RequestTimeoutCycles int
}

// DefaultOptions assumes Step runs at 48 kHz: a one second cooldown,
// three attempts and a ten second read timeout.
func DefaultOptions() Options {
	return Options{
		RetryDelayCycles:     48000,
		MaxRetries:           3,
		RequestTimeoutCycles: 480000,
	}
}

func (o Options) Validate() error {
	if o.RetryDelayCycles < 0 {
		return fmt.Errorf("%w: retry delay %d", ErrInvalidOptions, o.RetryDelayCycles)
	}
	if o.MaxRetries < 1 {
		return fmt.Errorf("%w: max retries %d", ErrInvalidOptions, o.MaxRetries)
	}
	if o.RequestTimeoutCycles < 0 {
		return fmt.Errorf("%w: request timeout %d", ErrInvalidOptions, o.RequestTimeoutCycles)
	}
	return nil
}
