// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/samplebank/utils"
)

// Resampler streams from src to a target sample rate using Catmull-Rom
// cubic interpolation. Works on interleaved samples and keeps the
// channel count. A one-pole low-pass runs on the input when
// downsampling. When the rates already match the source is passed
// through sample for sample.
type Resampler struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// hist holds frames t-1, t0, t+1, t+2 around the read position.
	// real marks the slots that came from the source rather than edge
	// padding.
	hist [4][]float32
	real [4]bool
	pos  float64

	in     []float32
	eof    bool
	primed bool

	lowPass []float32
	alpha   float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		in:       make([]float32, channels),
	}
	if dstRate > 0 {
		r.ratio = float64(src.SampleRate()) / float64(dstRate)
	}
	for i := range r.hist {
		r.hist[i] = make([]float32, channels)
	}
	if r.ratio > 1 {
		r.lowPass = make([]float32, channels)
		r.alpha = 0.5
	}
	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull reads one source frame into dst. It reports false once the
// source has no complete frame left.
func (r *Resampler) pull(dst []float32, first bool) (bool, error) {
	if r.eof {
		return false, nil
	}

	n, err := r.src.ReadSamples(r.in)
	got := n == r.channels
	if got {
		copy(dst, r.in)
		if r.lowPass != nil {
			if first {
				copy(r.lowPass, dst)
			}
			for c := range dst {
				dst[c] = r.alpha*dst[c] + (1-r.alpha)*r.lowPass[c]
				r.lowPass[c] = dst[c]
			}
		}
	}

	switch {
	case err == io.EOF:
		r.eof = true
	case err != nil:
		return false, fmt.Errorf("%w", err)
	case !got:
		r.eof = true
	}

	return got, nil
}

func (r *Resampler) prime() error {
	for i := 1; i < len(r.hist); i++ {
		ok, err := r.pull(r.hist[i], i == 1)
		if err != nil {
			return err
		}
		r.real[i] = ok
		if !ok {
			copy(r.hist[i], r.hist[i-1])
		}
	}
	copy(r.hist[0], r.hist[1])
	r.real[0] = r.real[1]
	r.primed = true
	return nil
}

func (r *Resampler) shift() error {
	first := r.hist[0]
	copy(r.hist[:], r.hist[1:])
	copy(r.real[:], r.real[1:])
	r.hist[3] = first

	ok, err := r.pull(r.hist[3], false)
	if err != nil {
		return err
	}
	r.real[3] = ok
	if !ok {
		copy(r.hist[3], r.hist[2])
	}
	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length must be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if r.dstRate <= 0 {
		return 0, ErrInvalidRate
	}
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.ratio == 1 {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	frames := len(dst) / r.channels
	for written < frames {
		for r.pos >= 1 {
			r.pos--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.real[1] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(r.pos)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.hist[0][c], r.hist[1][c], r.hist[2][c], r.hist[3][c], x)
		}

		written++
		r.pos += r.ratio
	}

	return written * r.channels, nil
}
