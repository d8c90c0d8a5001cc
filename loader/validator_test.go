// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"errors"
	"slices"
	"testing"

	"github.com/ik5/samplebank/internal/mediatest"
	"github.com/ik5/samplebank/media"
)

func TestFindFolder(t *testing.T) {
	t.Parallel()

	s := mediatest.New(mediatest.Folder{Name: "a"}, mediatest.Folder{Name: "elements"}, mediatest.Folder{Name: "Elements2"})

	tests := []struct {
		name string
		want int
		err  error
	}{
		{"elements", 1, nil},
		{"a", 0, nil},
		{"Elements", -1, ErrFolderNotFound},
		{"element", -1, ErrFolderNotFound},
	}
	for _, tt := range tests {
		got, err := FindFolder(s, tt.name)
		if got != tt.want || !errors.Is(err, tt.err) {
			t.Errorf("FindFolder(%q) = %d, %v; want %d, %v", tt.name, got, err, tt.want, tt.err)
		}
	}

	s.SetMounted(false)
	if _, err := FindFolder(s, "elements"); !errors.Is(err, ErrMediaUnavailable) {
		t.Errorf("FindFolder() unmounted = %v", err)
	}
}

func TestValidateFolder_ResolvesByName(t *testing.T) {
	t.Parallel()

	cat := smallCatalog()
	folder := mediatest.CatalogFolder(cat)
	folder.Files = append(folder.Files, mediatest.File{Name: "readme.wav", Channels: 2, BitDepth: 24, Frames: 1})
	s := mediatest.New(folder)

	out := make(FileIndexMap, cat.Len())
	if err := ValidateFolder(s, 0, cat, out); err != nil {
		t.Fatalf("ValidateFolder() = %v", err)
	}
	// CatalogFolder lists files in reverse.
	if want := (FileIndexMap{5, 4, 3, 2, 1, 0}); !slices.Equal(out, want) {
		t.Fatalf("index map = %v, want %v", out, want)
	}
}

func TestValidateFolder_FailureLeavesMapUntouched(t *testing.T) {
	t.Parallel()

	cat := smallCatalog()
	folder := mediatest.CatalogFolder(cat)
	folder.Lookup("n.wav").Frames = 1
	s := mediatest.New(folder)

	out := FileIndexMap{9, 9, 9, 9, 9, 9}
	err := ValidateFolder(s, 0, cat, out)
	if !errors.Is(err, ErrFrameCountMismatch) {
		t.Fatalf("ValidateFolder() = %v", err)
	}
	if !slices.Equal(out, FileIndexMap{9, 9, 9, 9, 9, 9}) {
		t.Fatalf("index map written on failure: %v", out)
	}
}

func TestValidateFolder_Errors(t *testing.T) {
	t.Parallel()

	cat := smallCatalog()
	s := mediatest.New(mediatest.CatalogFolder(cat))

	if err := ValidateFolder(s, 0, cat, make(FileIndexMap, 2)); err == nil {
		t.Error("short index map accepted")
	}
	if err := ValidateFolder(s, 3, cat, make(FileIndexMap, cat.Len())); !errors.Is(err, media.ErrNoSuchFolder) {
		t.Errorf("missing folder = %v", err)
	}

	s.SetMounted(false)
	if err := ValidateFolder(s, 0, cat, make(FileIndexMap, cat.Len())); !errors.Is(err, media.ErrNotMounted) {
		t.Errorf("unmounted = %v", err)
	}
}

func TestLoadState_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[LoadState]string{
		Idle:           "idle",
		LoadingSegment: "loading segment",
		Failed:         "failed",
		LoadState(42):  "LoadState(42)",
	} {
		if s.String() != want {
			t.Errorf("String() = %q, want %q", s.String(), want)
		}
	}
}
