// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"errors"
	"slices"
	"testing"
)

func TestElements_Layout(t *testing.T) {
	t.Parallel()

	cat := Elements()
	if err := cat.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if cat.Folder != "elements" {
		t.Errorf("Folder = %q, want elements", cat.Folder)
	}
	if got := cat.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}

	want := BoundaryTable{0, 17099, 20852, 30369, 63050, 85807, 95952, 106297, 117606, 128013}
	if got := cat.Boundaries(); !slices.Equal(got, want) {
		t.Errorf("Boundaries() = %v, want %v", got, want)
	}
	if got := cat.SegmentFrames(); got != 128013 {
		t.Errorf("SegmentFrames() = %d, want 128013", got)
	}
	if got := cat.FinalFrames(); got != 40963 {
		t.Errorf("FinalFrames() = %d, want 40963", got)
	}
	if cat.Final.Name != "noise.wav" || cat.Final.Region != FinalRegion {
		t.Errorf("Final = %+v", cat.Final)
	}
}

func TestCatalog_Entries(t *testing.T) {
	t.Parallel()

	cat := Mono16("x", []NamedLength{{"a.wav", 3}, {"b.wav", 5}}, NamedLength{"n.wav", 7})
	entries := cat.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d, want 3", len(entries))
	}
	for i, d := range entries {
		if d.Index != i {
			t.Errorf("entry %d has Index %d", i, d.Index)
		}
		if cat.Entry(i) != d {
			t.Errorf("Entry(%d) = %+v, want %+v", i, cat.Entry(i), d)
		}
	}
	if entries[1].Offset != 3 {
		t.Errorf("b.wav offset = %d, want 3", entries[1].Offset)
	}
}

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()

	base := func() Catalog {
		return Mono16("x", []NamedLength{{"a.wav", 3}, {"b.wav", 5}}, NamedLength{"n.wav", 7})
	}

	tests := []struct {
		name   string
		mutate func(*Catalog)
		want   error
	}{
		{"ok", func(*Catalog) {}, nil},
		{"no folder", func(c *Catalog) { c.Folder = "" }, ErrNoFolder},
		{"no segments", func(c *Catalog) { c.Segments = nil }, ErrEmptyCatalog},
		{"duplicate", func(c *Catalog) { c.Final.Name = "a.wav" }, ErrDuplicateName},
		{"zero frames", func(c *Catalog) { c.Segments[1].Frames = 0 }, ErrBadFrameCount},
		{"stereo", func(c *Catalog) { c.Segments[0].Channels = 2 }, ErrBadFormat},
		{"bad offset", func(c *Catalog) { c.Segments[1].Offset = 2 }, ErrBadRegion},
		{"final in segment region", func(c *Catalog) { c.Final.Region = SegmentRegion }, ErrBadRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := base()
			tt.mutate(&c)
			err := c.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBoundaryTable(t *testing.T) {
	t.Parallel()

	b := Elements().Boundaries()
	if b.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", b.Len())
	}
	if err := b.Validate(128013); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	start, end := b.Segment(3)
	if start != 30369 || end != 63050 {
		t.Errorf("Segment(3) = [%d, %d), want [30369, 63050)", start, end)
	}

	for _, bad := range []BoundaryTable{nil, {0}, {1, 5}, {0, 5, 4, 6}, {0, 5}} {
		if err := bad.Validate(6); !errors.Is(err, ErrBadBoundaries) {
			t.Errorf("Validate(%v) = %v, want ErrBadBoundaries", bad, err)
		}
	}
}

func TestRegionID_String(t *testing.T) {
	t.Parallel()

	if SegmentRegion.String() != "segments" || FinalRegion.String() != "final" {
		t.Fatalf("unexpected names %q %q", SegmentRegion, FinalRegion)
	}
	if got := RegionID(9).String(); got != "region(9)" {
		t.Fatalf("String() = %q", got)
	}
}
