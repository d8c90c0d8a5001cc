// SPDX-License-Identifier: EPL-2.0

// Package media defines the removable-storage interface a sample loader
// talks to, and Card, a directory-backed implementation of it.
//
// Storage exposes folders and files by index, with per-file metadata,
// and an asynchronous ReadFrames that accepts or rejects a request
// immediately and reports the outcome later through a callback. The
// callback may run on any goroutine.
//
// Card treats a directory as the card root: each subdirectory is a
// folder and each file with a registered audio extension is a file.
// Metadata comes from the codec's Probe, so nothing is decoded until a
// read is issued.
//
//	card := media.NewCard("/mnt/sd", formats.DefaultRegistry(), media.CardOptions{})
//	defer card.Close()
//	if err := card.Mount(); err != nil {
//		return err
//	}
//
// Watch polls for the root appearing and disappearing and mounts or
// unmounts the card to match.
package media
