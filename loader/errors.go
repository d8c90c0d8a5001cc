// SPDX-License-Identifier: EPL-2.0

package loader

import "errors"

var (
	ErrMediaUnavailable   = errors.New("media not mounted")
	ErrFolderNotFound     = errors.New("sample folder not found")
	ErrTooFewFiles        = errors.New("folder has too few files")
	ErrFileMissing        = errors.New("sample file missing")
	ErrFormatMismatch     = errors.New("sample file has the wrong format")
	ErrFrameCountMismatch = errors.New("sample file has the wrong length")
	ErrReadRejected       = errors.New("read request rejected")
	ErrReadFailed         = errors.New("read failed")
	ErrReadTimeout        = errors.New("read timed out")
	ErrRetriesExhausted   = errors.New("retries exhausted")
	ErrInvalidOptions     = errors.New("invalid loader options")
)
