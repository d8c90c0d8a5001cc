// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/samplebank/audio"
	"github.com/ik5/samplebank/utils"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	// whole frames only, so a short read never splits a sample
	want := (len(dst) / channels) * bytesPerFrame
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	s.buf = s.buf[:want]

	n, err := io.ReadFull(s.dec, s.buf)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.done = true
		err = io.EOF
	default:
		return 0, fmt.Errorf("%w", err)
	}

	samples := (n / bytesPerFrame) * channels
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(s.buf[2*i:]))
		dst[i] = utils.Int16ToFloat32(v)
	}

	if samples == 0 && err != nil {
		return 0, io.EOF
	}
	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}

// Probe reports the decoded length. MP3 is lossy, so BitDepth is 0.
func (Decoder) Probe(rs io.ReadSeeker) (audio.Info, error) {
	dec, err := gomp3.NewDecoder(rs)
	if err != nil {
		return audio.Info{}, fmt.Errorf("%w", err)
	}

	frames := 0
	if l := dec.Length(); l > 0 {
		frames = int(l / bytesPerFrame)
	}

	return audio.Info{
		SampleRate: dec.SampleRate(),
		Channels:   channels,
		Frames:     frames,
	}, nil
}
