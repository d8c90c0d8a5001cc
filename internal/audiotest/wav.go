// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
)

// WAV builds an in-memory PCM WAV file. samples are interleaved and
// written at bitsPerSample (8, 16 or 24) from their 16-bit values.
// Extra chunks are inserted between "fmt " and "data".
func WAV(sampleRate, channels, bitsPerSample int, samples []int16, extra ...Chunk) []byte {
	bytesPerSample := bitsPerSample / 8

	var data bytes.Buffer
	for _, s := range samples {
		switch bitsPerSample {
		case 8:
			data.WriteByte(byte(int(s>>8) + 128))
		case 24:
			v := int32(s) << 8
			data.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		default:
			_ = binary.Write(&data, binary.LittleEndian, s)
		}
	}

	var body bytes.Buffer
	body.WriteString("WAVE")

	body.WriteString("fmt ")
	_ = binary.Write(&body, binary.LittleEndian, uint32(16))
	_ = binary.Write(&body, binary.LittleEndian, uint16(1))
	_ = binary.Write(&body, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&body, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&body, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	_ = binary.Write(&body, binary.LittleEndian, uint16(channels*bytesPerSample))
	_ = binary.Write(&body, binary.LittleEndian, uint16(bitsPerSample))

	for _, c := range extra {
		body.WriteString(c.ID)
		_ = binary.Write(&body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)
		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	body.WriteString("data")
	_ = binary.Write(&body, binary.LittleEndian, uint32(data.Len()))
	body.Write(data.Bytes())

	var out bytes.Buffer
	out.WriteString("RIFF")
	_ = binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// Chunk is an extra RIFF chunk for WAV.
type Chunk struct {
	ID   string
	Data []byte
}

// MonoWAV16 is WAV(sampleRate, 1, 16, samples).
func MonoWAV16(sampleRate int, samples []int16) []byte {
	return WAV(sampleRate, 1, 16, samples)
}

// Ramp returns n samples starting at start and stepping by step,
// wrapping around the int16 range.
func Ramp(n int, start, step int16) []int16 {
	out := make([]int16, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}
