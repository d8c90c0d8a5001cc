// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives shared by the
// codecs, the media layer and the preparation tools.
//
// It contains:
//   - Source, a pull-based stream of interleaved float32 samples
//   - Decoder, which turns a reader into a Source and probes file
//     metadata (Info) without decoding the whole file
//   - Registry, a decoder table keyed by format / file extension
//   - Resampler and MonoMixer, chainable Source adapters
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in [-1, 1]. 16-bit PCM maps onto that range by a
// power of two, so a 16-bit file read through a Source and converted
// back with utils.Float32ToInt16 reproduces the stored samples exactly.
//
// # Probing
//
// Storage layers need channel count, bit depth and frame count before
// they commit to a read:
//
//	dec, _ := registry.ForFile("wavetable_00.wav")
//	info, err := dec.Probe(file)
//	// info.Channels, info.BitDepth, info.Frames
//
// # Pipelines
//
//	res := audio.NewResampler(src, 48000)
//	mono := audio.NewMonoMixer(res)
//	n, err := mono.ReadSamples(buf)
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. A call may
// return n > 0 together with io.EOF.
package audio
