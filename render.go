// SPDX-License-Identifier: EPL-2.0

package samplebank

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/samplebank/audio"
	"github.com/ik5/samplebank/utils"
)

// RenderMono16 downmixes src to mono, resamples it to targetRate and
// collects the whole stream as 16-bit PCM. bufferSize is the read
// chunk in samples.
func RenderMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		return nil, ErrInvalidBufferSize
	}
	if targetRate <= 0 {
		return nil, audio.ErrInvalidRate
	}

	// Mixing first halves the interpolation work for stereo input.
	mono := audio.NewMonoMixer(src)
	resampler := audio.NewResampler(mono, targetRate)

	// Start with about two seconds and grow as needed.
	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := resampler.ReadSamples(buf)
		if n > 0 {
			if cap(pcm16)-len(pcm16) < n {
				grown := make([]int16, len(pcm16), len(pcm16)+max(n, cap(pcm16)))
				copy(grown, pcm16)
				pcm16 = grown
			}

			start := len(pcm16)
			pcm16 = pcm16[:start+n]
			for i, x := range buf[:n] {
				pcm16[start+i] = utils.Float32ToInt16(x)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rendering: %w", err)
		}
	}

	return pcm16, nil
}
