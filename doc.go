// SPDX-License-Identifier: EPL-2.0

// Package samplebank loads a fixed catalog of sample files from
// removable media into memory without blocking a real-time control
// loop, and prepares those files in the first place.
//
// The pieces live in subpackages:
//
//   - catalog: the expected files, their lengths and where they land
//   - media: the storage interface and a directory-backed card
//   - loader: the non-blocking load state machine and its host driver
//   - config: host configuration
//   - audio, formats/...: decoding and conversion used to read and
//     prepare sample files
//
// This package holds the preparation pipeline. RenderMono16 turns any
// decoded source into mono 16-bit PCM at the catalog rate, and Prepare
// cuts rendered audio into the catalog's exact files:
//
//	src, _ := wav.Decoder{}.Decode(f)
//	pcm, err := samplebank.RenderMono16(src, catalog.ElementsSampleRate, 4096)
//	files, err := samplebank.Prepare(catalog.Elements(), pcm, noise)
//	written, err := samplebank.WriteFiles("card/elements", files, catalog.ElementsSampleRate, false)
//
// A source already at the target rate and mono passes through bit
// exact, so prepared files match their input sample for sample.
package samplebank
