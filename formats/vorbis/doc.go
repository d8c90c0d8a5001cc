// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding and probing via
// github.com/jfreymuth/oggvorbis.
//
// The decoder produces float32 natively, so samples are handed through
// without conversion. Probe reports the stream length per channel when
// the reader can seek and 0 otherwise. BitDepth is always 0.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Like MP3, Vorbis is only useful as input to the preparation tool; it
// never matches a PCM catalog entry.
package vorbis
