// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/media"
)

// FileIndexMap maps a catalog index to the file's index in the folder.
type FileIndexMap []int

// ValidateFolder checks that folder holds every file cat expects, with
// the expected format and exact length, and resolves each by name. It
// stops at the first problem. out must have cat.Len() entries and is
// written only on success.
func ValidateFolder(s media.Storage, folder int, cat catalog.Catalog, out FileIndexMap) error {
	if len(out) != cat.Len() {
		return fmt.Errorf("index map has %d entries for %d files", len(out), cat.Len())
	}

	var f fault
	if validateFolder(s, folder, cat, out, make([]int, cat.Len()), &f) != nil {
		return f.err()
	}
	return nil
}

// validateFolder resolves into scratch and copies to out on success.
// On failure it returns the bare cause and leaves the detail in f, so
// the polling path never builds an error value.
func validateFolder(s media.Storage, folder int, cat catalog.Catalog, out, scratch FileIndexMap, f *fault) error {
	*f = fault{file: -1}

	info, err := s.FolderInfo(folder)
	if err != nil {
		f.kind = err
		return err
	}
	f.folder = info.Name
	if info.NumFiles < cat.Len() {
		f.kind, f.got, f.want = ErrTooFewFiles, info.NumFiles, cat.Len()
		return ErrTooFewFiles
	}

	for i := range cat.Len() {
		d := cat.Entry(i)
		f.name = d.Name

		file, fi, err := lookupFile(s, folder, info.NumFiles, d.Name, f)
		if err != nil {
			f.kind = err
			return err
		}
		if fi.Channels != d.Channels || fi.BitDepth != d.BitDepth {
			f.kind = ErrFormatMismatch
			f.got, f.gotBits = fi.Channels, fi.BitDepth
			f.want, f.wantBits = d.Channels, d.BitDepth
			return ErrFormatMismatch
		}
		if fi.Frames != d.Frames {
			f.kind, f.got, f.want = ErrFrameCountMismatch, fi.Frames, d.Frames
			return ErrFrameCountMismatch
		}

		scratch[i] = file
	}

	copy(out, scratch)
	return nil
}

func lookupFile(s media.Storage, folder, numFiles int, name string, f *fault) (int, media.FileInfo, error) {
	for j := range numFiles {
		fi, err := s.FileInfo(folder, j)
		if err != nil {
			f.file = j
			return -1, media.FileInfo{}, err
		}
		if fi.Name == name {
			return j, fi, nil
		}
	}
	return -1, media.FileInfo{}, ErrFileMissing
}

// fault is the detail of a failed validation, kept in plain fields.
type fault struct {
	kind   error
	folder string
	name   string
	// file is the folder entry whose metadata could not be read, or -1.
	file int

	got, want         int
	gotBits, wantBits int
}

func (f *fault) err() error {
	switch f.kind {
	case nil:
		return nil
	case ErrTooFewFiles:
		return fmt.Errorf("%w: %q has %d, need %d", ErrTooFewFiles, f.folder, f.got, f.want)
	case ErrFileMissing:
		return fmt.Errorf("%w: %s", ErrFileMissing, f.name)
	case ErrFormatMismatch:
		return fmt.Errorf("%w: %s is %d ch %d bit, want %d ch %d bit",
			ErrFormatMismatch, f.name, f.got, f.gotBits, f.want, f.wantBits)
	case ErrFrameCountMismatch:
		return fmt.Errorf("%w: %s has %d frames, want %d", ErrFrameCountMismatch, f.name, f.got, f.want)
	}
	if f.file >= 0 {
		return fmt.Errorf("reading file %d of %q: %w", f.file, f.folder, f.kind)
	}
	return f.kind
}
