// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding and probing via
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always outputs 16-bit stereo, so decoded sources report two
// channels regardless of the stream's channel mode. Probe needs a
// seekable reader to compute the length; BitDepth is reported as 0
// because the stored data is not PCM.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// MP3 files are accepted as input by the preparation tool; they never
// satisfy a catalog entry that asks for 16-bit PCM.
package mp3
