// SPDX-License-Identifier: EPL-2.0

package catalog

import "errors"

var (
	ErrEmptyCatalog   = errors.New("catalog has no segments")
	ErrNoFolder       = errors.New("catalog has no folder name")
	ErrDuplicateName  = errors.New("duplicate file name in catalog")
	ErrBadFrameCount  = errors.New("frame count must be positive")
	ErrBadFormat      = errors.New("unsupported sample format")
	ErrBadRegion      = errors.New("descriptor region does not match its position")
	ErrBadBoundaries  = errors.New("boundary table is not a valid layout")
	ErrSegmentOutside = errors.New("segment index out of range")
)
