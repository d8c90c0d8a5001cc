// SPDX-License-Identifier: EPL-2.0

package catalog

// BoundaryTable holds N+1 offsets into the segment region.
type BoundaryTable []int

// NewBoundaryTable lays segments end to end.
func NewBoundaryTable(segments []Descriptor) BoundaryTable {
	b := make(BoundaryTable, len(segments)+1)
	for i, d := range segments {
		b[i+1] = b[i] + d.Frames
	}
	return b
}

// Len is the number of segments.
func (b BoundaryTable) Len() int { return max(len(b)-1, 0) }

// Total is the length of the whole segment region.
func (b BoundaryTable) Total() int {
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

// Segment returns the half-open range of segment i.
func (b BoundaryTable) Segment(i int) (start, end int) {
	return b[i], b[i+1]
}

// Validate checks that the table starts at zero, never decreases and
// ends at total.
func (b BoundaryTable) Validate(total int) error {
	if len(b) < 2 || b[0] != 0 || b[len(b)-1] != total {
		return ErrBadBoundaries
	}
	for i := 1; i < len(b); i++ {
		if b[i] < b[i-1] {
			return ErrBadBoundaries
		}
	}
	return nil
}
