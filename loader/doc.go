// SPDX-License-Identifier: EPL-2.0

// Package loader fills fixed memory regions with a catalog of sample
// files from removable media, one asynchronous read at a time, driven
// by a non-blocking Step called once per control cycle.
//
// A load cycle looks for the catalog's folder, validates every file's
// format and length before reading anything, then reads the segments in
// catalog order followed by the final file:
//
//	Idle → Validating → LoadingSegment(0) … LoadingSegment(N-1) → LoadingFinal → Complete
//
// Any failure moves to Failed. After a cooldown of RetryDelayCycles
// steps the cycle starts over from Idle, until MaxRetries failures have
// been counted; then Failed is permanent until Reset.
//
// Buffers start zeroed and a segment changes only when its read
// completes successfully, so consumers may read them at any time:
//
//	l, err := loader.New(card, catalog.Elements(), loader.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	host := loader.NewHost(l, logger)
//	for range ticker.C {
//		host.Cycle()
//	}
//
// Step does not block, log or allocate while a read is in flight. Read
// completions arrive through an atomic token; a completion from an
// abandoned read is ignored.
package loader
