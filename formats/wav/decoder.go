// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/samplebank/audio"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

type Decoder struct{}

// open validates the RIFF/WAVE headers and positions the decoder at the
// start of the data chunk.
func open(rs io.ReadSeeker) (*gowav.Decoder, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, ErrOnlyIntegerPCMSupported
	}
	if dec.NumChans == 0 || dec.BitDepth == 0 {
		return nil, ErrUnsupportedWavLayout
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}
	return dec, nil
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	return audio.NewPCMSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth)), nil
}

// Probe reads the format and length of a WAV file without decoding its
// samples.
func (Decoder) Probe(rs io.ReadSeeker) (audio.Info, error) {
	dec, err := open(rs)
	if err != nil {
		return audio.Info{}, err
	}

	bytesPerFrame := int(dec.NumChans) * ((int(dec.BitDepth)-1)/8 + 1)

	return audio.Info{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Frames:     int(dec.PCMLen()) / bytesPerFrame,
	}, nil
}
