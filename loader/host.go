// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"log/slog"
)

const (
	StatusLoading  = "Loading samples..."
	StatusNotFound = "Samples not found"
)

// Host drives a Loader the way a plugin's per-cycle callback does. It
// watches the mount flag, resets the loader when the media goes away,
// steps it and logs state changes.
type Host struct {
	loader *Loader
	logger *slog.Logger

	mounted bool
	state   LoadState
	segment int
	retries int
	cycles  uint64
}

func NewHost(l *Loader, logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{
		loader:  l,
		logger:  logger,
		mounted: l.Storage().IsMounted(),
		state:   l.State(),
	}
}

// Cycle runs one control cycle and reports whether the samples are
// loaded.
func (h *Host) Cycle() bool {
	h.cycles++

	mounted := h.loader.Storage().IsMounted()
	if h.mounted && !mounted {
		h.loader.Reset()
		h.logger.Info("loader: media removed, samples cleared", "cycle", h.cycles)
	} else if !h.mounted && mounted {
		h.logger.Info("loader: media inserted", "cycle", h.cycles)
	}
	h.mounted = mounted

	ready := h.loader.Step()
	h.observe()
	return ready
}

func (h *Host) observe() {
	l := h.loader
	state, segment, retries := l.State(), l.Segment(), l.Retries()
	if state == h.state && retries == h.retries && (state != LoadingSegment || segment == h.segment) {
		return
	}
	h.state, h.segment, h.retries = state, segment, retries

	switch state {
	case Idle:
		h.logger.Debug("loader: idle", "cycle", h.cycles)
	case Validating:
		h.logger.Debug("loader: validating folder", "folder", l.Catalog().Folder, "cycle", h.cycles)
	case LoadingSegment:
		h.logger.Debug("loader: loading segment", "segment", segment,
			"file", l.Catalog().Segments[segment].Name, "cycle", h.cycles)
	case LoadingFinal:
		h.logger.Debug("loader: loading final file", "file", l.Catalog().Final.Name, "cycle", h.cycles)
	case Complete:
		loaded, _ := l.Progress()
		h.logger.Info("loader: samples loaded", "files", loaded, "cycle", h.cycles)
	case Failed:
		if l.Exhausted() {
			h.logger.Error("loader: giving up", "retries", l.Retries(), "err", l.LastError())
			return
		}
		h.logger.Warn("loader: load failed", "retries", l.Retries(), "err", l.LastError(), "cycle", h.cycles)
	}
}

// Status is the line a display shows for the current state. It is
// empty once loaded.
func (h *Host) Status() string { return StatusText(h.loader.State()) }

// Cycles is the number of Cycle calls so far.
func (h *Host) Cycles() uint64 { return h.cycles }

func (h *Host) Loader() *Loader { return h.loader }

// StatusText maps a state to display text.
func StatusText(s LoadState) string {
	switch s {
	case Complete:
		return ""
	case Failed:
		return StatusNotFound
	default:
		return StatusLoading
	}
}
