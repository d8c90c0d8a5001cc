// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"slices"
	"testing"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/internal/mediatest"
)

func smallCatalog() catalog.Catalog {
	return catalog.Mono16("elements", []catalog.NamedLength{
		{Name: "s0.wav", Frames: 4},
		{Name: "s1.wav", Frames: 3},
		{Name: "s2.wav", Frames: 5},
		{Name: "s3.wav", Frames: 2},
		{Name: "s4.wav", Frames: 6},
	}, catalog.NamedLength{Name: "n.wav", Frames: 7})
}

func testOptions() Options {
	return Options{RetryDelayCycles: 3, MaxRetries: 3}
}

func newTestLoader(t *testing.T, opts Options) (*Loader, *mediatest.Storage) {
	t.Helper()

	cat := smallCatalog()
	s := mediatest.New(mediatest.Folder{Name: "other"}, mediatest.CatalogFolder(cat))
	l, err := New(s, cat, opts)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	return l, s
}

func allZero(v []int16) bool {
	return !slices.ContainsFunc(v, func(x int16) bool { return x != 0 })
}

// regionState reports, per catalog entry, whether its destination is
// all zero (false) or exactly the file content (true). Any other
// content fails the test.
func regionState(t *testing.T, l *Loader) []bool {
	t.Helper()

	cat := l.Catalog()
	out := make([]bool, cat.Len())
	for _, d := range cat.Entries() {
		var got []int16
		if d.Region == catalog.FinalRegion {
			got = l.NoiseSample()
		} else {
			start, end := l.Boundaries().Segment(d.Index)
			got = l.SampleData()[start:end]
		}

		switch {
		case allZero(got):
		case slices.Equal(got, mediatest.Pattern(d.Index, d.Frames)):
			out[d.Index] = true
		default:
			t.Fatalf("%s holds neither zeros nor its file content: %v", d.Name, got)
		}
	}
	return out
}

func loadedCount(t *testing.T, l *Loader) int {
	t.Helper()

	n := 0
	for _, ok := range regionState(t, l) {
		if ok {
			n++
		}
	}
	return n
}

func step(t *testing.T, l *Loader, n int) bool {
	t.Helper()

	var ready bool
	for range n {
		ready = l.Step()
	}
	return ready
}

// driveTo steps and completes reads until the loader is waiting on
// catalog entry idx.
func driveTo(t *testing.T, l *Loader, s *mediatest.Storage, idx int) {
	t.Helper()

	step(t, l, 2)
	for i := range idx {
		if !s.Complete(true) {
			t.Fatalf("no read pending for entry %d", i)
		}
		l.Step()
	}

	want := LoadingSegment
	if idx == len(l.Catalog().Segments) {
		want = LoadingFinal
	}
	if l.State() != want || (want == LoadingSegment && l.Segment() != idx) {
		t.Fatalf("state = %v/%d, want %v/%d", l.State(), l.Segment(), want, idx)
	}
}
