// SPDX-License-Identifier: EPL-2.0

// Package formats wires every codec in this module into an
// audio.Registry keyed by file extension.
package formats

import (
	"github.com/ik5/samplebank/audio"
	"github.com/ik5/samplebank/formats/aiff"
	"github.com/ik5/samplebank/formats/mp3"
	"github.com/ik5/samplebank/formats/vorbis"
	"github.com/ik5/samplebank/formats/wav"
)

// DefaultRegistry returns a registry with wav, aif/aiff, mp3 and ogg.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	return reg
}
