// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/samplebank/audio"
)

type Decoder struct{}

func open(rs io.ReadSeeker) (*aiff.Decoder, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.NumChans == 0 || dec.BitDepth == 0 || dec.SampleRate <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}
	return dec, nil
}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec, err := open(rs)
	if err != nil {
		return nil, err
	}

	return audio.NewPCMSource(dec, dec.SampleRate, int(dec.NumChans), int(dec.BitDepth)), nil
}

// Probe reads the COMM chunk of an AIFF file.
func (Decoder) Probe(rs io.ReadSeeker) (audio.Info, error) {
	dec, err := open(rs)
	if err != nil {
		return audio.Info{}, err
	}

	return audio.Info{
		SampleRate: dec.SampleRate,
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Frames:     int(dec.NumSampleFrames),
	}, nil
}
