// SPDX-License-Identifier: EPL-2.0

package samplebank

import "errors"

var (
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
	ErrShortSource       = errors.New("source is shorter than the boundary table")
	ErrFileExists        = errors.New("file already exists")
)
