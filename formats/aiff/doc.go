// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding
// and probing on top of github.com/go-audio/aiff.
//
// Integer PCM of any bit depth and channel count is accepted. Samples
// are big-endian on disk; the decoder hands out normalized float32
// through audio.Source like every other codec in this module.
//
//	info, err := aiff.Decoder{}.Probe(file)   // COMM chunk only
//	src, err := aiff.Decoder{}.Decode(file)
//
// Both ".aif" and ".aiff" are registered by formats.DefaultRegistry.
// AIFF-C (compressed) is not supported.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a FORM/AIFF file
//   - ErrUnsupportedAiffLayout: zero channels, bit depth or sample rate
package aiff
