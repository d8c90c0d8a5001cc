// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding, probing and encoding.
//
// Decoding and probing use github.com/go-audio/wav. Any integer PCM
// layout go-audio understands is accepted (8, 16, 24 and 32 bit, any
// channel count, any sample rate); chunks before the data chunk are
// skipped.
//
// # Probing
//
// Probe reads only the headers and reports channels, bit depth, sample
// rate and the frame count derived from the data chunk size:
//
//	info, err := wav.Decoder{}.Probe(file)
//
// # Decoding
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Writing WAV Files
//
// WriteWAV16 writes a canonical 44 byte header followed by mono 16-bit
// little-endian samples. It only needs an io.Writer, so it can target a
// bytes.Buffer as well as a file:
//
//	err := wav.WriteWAV16(file, 48000, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyIntegerPCMSupported: float or compressed encodings
//   - ErrUnsupportedWavLayout: zero channels or zero bit depth
//   - ErrUnsupportedWavChunks: no usable data chunk
package wav
