// SPDX-License-Identifier: EPL-2.0

// Package catalog describes the fixed set of sample files a loader
// expects to find on removable media, and where each one lands in
// memory.
//
// A Catalog is build-time data: an ordered list of segment descriptors
// that are concatenated into one region, followed by a single
// descriptor that fills a second region on its own. The BoundaryTable
// derived from the segments gives N+1 offsets; segment i occupies
// [b[i], b[i+1]).
//
//	cat := catalog.Elements()
//	bounds := cat.Boundaries()
//	start, end := bounds.Segment(3)
//
// Catalogs are values. Nothing in this package mutates one after
// construction.
package catalog
