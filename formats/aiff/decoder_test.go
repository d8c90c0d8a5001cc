// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// aiffFile builds a minimal 16-bit AIFF at 44.1kHz.
func aiffFile(channels int, samples []int16) []byte {
	var ssnd bytes.Buffer
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(&ssnd, binary.BigEndian, uint32(0)) // block size
	for _, s := range samples {
		_ = binary.Write(&ssnd, binary.BigEndian, s)
	}

	var comm bytes.Buffer
	_ = binary.Write(&comm, binary.BigEndian, uint16(channels))
	_ = binary.Write(&comm, binary.BigEndian, uint32(len(samples)/channels))
	_ = binary.Write(&comm, binary.BigEndian, uint16(16))
	// 44100 as an 80-bit IEEE extended float
	comm.Write([]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0})

	var body bytes.Buffer
	body.WriteString("AIFF")
	body.WriteString("COMM")
	_ = binary.Write(&body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	_ = binary.Write(&body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	var out bytes.Buffer
	out.WriteString("FORM")
	_ = binary.Write(&out, binary.BigEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"garbage", []byte("This is not AIFF data")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() error = nil, want error")
			}
			if _, err := (Decoder{}).Probe(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotAiffFile) {
				t.Errorf("Probe() error = %v, want ErrNotAiffFile", err)
			}
		})
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	info, err := Decoder{}.Probe(bytes.NewReader(aiffFile(2, make([]int16, 300))))
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}

	if info.Channels != 2 || info.BitDepth != 16 || info.Frames != 150 || info.SampleRate != 44100 {
		t.Errorf("Probe() = %+v, want 2ch 16bit 150 frames 44100Hz", info)
	}
}

func TestDecode_Samples(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(aiffFile(1, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	want := []float32{0, 0.5, -0.5, -1}
	if n != len(want) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(want))
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, buf[i], want[i])
		}
	}
}
