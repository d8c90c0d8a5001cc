// SPDX-License-Identifier: EPL-2.0

package catalog

import "fmt"

// RegionID names a destination memory region.
type RegionID uint8

const (
	// SegmentRegion is the concatenated multi-segment buffer.
	SegmentRegion RegionID = iota
	// FinalRegion is the single buffer filled by the last catalog entry.
	FinalRegion
)

func (r RegionID) String() string {
	switch r {
	case SegmentRegion:
		return "segments"
	case FinalRegion:
		return "final"
	default:
		return fmt.Sprintf("region(%d)", uint8(r))
	}
}

// Descriptor is one expected file.
type Descriptor struct {
	// Index is the logical position in load order.
	Index    int
	Name     string
	Channels int
	BitDepth int
	Frames   int
	Region   RegionID
	// Offset is the first sample inside Region.
	Offset int
}

// Catalog is the ordered set of files one load cycle must bring in.
type Catalog struct {
	// Folder is the exact name of the folder on the media.
	Folder   string
	Segments []Descriptor
	Final    Descriptor
}

// Len is the number of files, segments plus the final entry.
func (c Catalog) Len() int { return len(c.Segments) + 1 }

// Entry returns the descriptor for logical index i.
func (c Catalog) Entry(i int) Descriptor {
	if i < len(c.Segments) {
		return c.Segments[i]
	}
	return c.Final
}

// Entries returns every descriptor in load order.
func (c Catalog) Entries() []Descriptor {
	out := make([]Descriptor, 0, c.Len())
	out = append(out, c.Segments...)
	return append(out, c.Final)
}

// SegmentFrames is the total length of the segment region.
func (c Catalog) SegmentFrames() int {
	total := 0
	for _, d := range c.Segments {
		total += d.Frames
	}
	return total
}

// FinalFrames is the length of the final region.
func (c Catalog) FinalFrames() int { return c.Final.Frames }

// Boundaries computes the segment boundary table.
func (c Catalog) Boundaries() BoundaryTable {
	return NewBoundaryTable(c.Segments)
}

// Validate checks that the catalog describes a consistent layout.
func (c Catalog) Validate() error {
	if c.Folder == "" {
		return ErrNoFolder
	}
	if len(c.Segments) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, c.Len())
	offset := 0
	for i, d := range c.Entries() {
		if _, dup := seen[d.Name]; dup || d.Name == "" {
			return fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = struct{}{}

		if d.Frames <= 0 {
			return fmt.Errorf("%w: %s has %d", ErrBadFrameCount, d.Name, d.Frames)
		}
		if d.Channels != 1 || d.BitDepth != 16 {
			return fmt.Errorf("%w: %s is %d ch %d bit", ErrBadFormat, d.Name, d.Channels, d.BitDepth)
		}
		if d.Index != i {
			return fmt.Errorf("%w: %s has index %d at position %d", ErrBadRegion, d.Name, d.Index, i)
		}

		if i < len(c.Segments) {
			if d.Region != SegmentRegion || d.Offset != offset {
				return fmt.Errorf("%w: %s", ErrBadRegion, d.Name)
			}
			offset += d.Frames
			continue
		}
		if d.Region != FinalRegion || d.Offset != 0 {
			return fmt.Errorf("%w: %s", ErrBadRegion, d.Name)
		}
	}

	return nil
}

// Mono16 builds a catalog of mono 16-bit files. segments are
// concatenated in the given order; final fills its own region.
func Mono16(folder string, segments []NamedLength, final NamedLength) Catalog {
	c := Catalog{Folder: folder, Segments: make([]Descriptor, len(segments))}

	offset := 0
	for i, s := range segments {
		c.Segments[i] = Descriptor{
			Index:    i,
			Name:     s.Name,
			Channels: 1,
			BitDepth: 16,
			Frames:   s.Frames,
			Region:   SegmentRegion,
			Offset:   offset,
		}
		offset += s.Frames
	}

	c.Final = Descriptor{
		Index:    len(segments),
		Name:     final.Name,
		Channels: 1,
		BitDepth: 16,
		Frames:   final.Frames,
		Region:   FinalRegion,
	}
	return c
}

// NamedLength is a file name with its exact frame count.
type NamedLength struct {
	Name   string
	Frames int
}
