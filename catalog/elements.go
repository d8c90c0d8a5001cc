// SPDX-License-Identifier: EPL-2.0

package catalog

// ElementsFolder is the folder the Elements wavetables live in.
const ElementsFolder = "elements"

// ElementsSampleRate is the rate the Elements files are rendered at.
const ElementsSampleRate = 48000

// Elements returns the catalog for the Elements resonator: nine
// wavetables concatenated into one region and a noise sample in a
// second one.
func Elements() Catalog {
	return Mono16(ElementsFolder, []NamedLength{
		{"wavetable_00.wav", 17099},
		{"wavetable_01.wav", 3753},
		{"wavetable_02.wav", 9517},
		{"wavetable_03.wav", 32681},
		{"wavetable_04.wav", 22757},
		{"wavetable_05.wav", 10145},
		{"wavetable_06.wav", 10345},
		{"wavetable_07.wav", 11309},
		{"wavetable_08.wav", 10407},
	}, NamedLength{"noise.wav", 40963})
}
