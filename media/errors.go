// SPDX-License-Identifier: EPL-2.0

package media

import "errors"

var (
	ErrNotMounted        = errors.New("media is not mounted")
	ErrNoSuchFolder      = errors.New("no such folder")
	ErrNoSuchFile        = errors.New("no such file")
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrShortRead         = errors.New("file ended before the requested frames")
	ErrClosed            = errors.New("card is closed")
	ErrWithdrawn         = errors.New("read withdrawn by its issuer")
)
