// SPDX-License-Identifier: EPL-2.0

package samplebank

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/formats/wav"
)

// File is one prepared catalog file.
type File struct {
	catalog.Descriptor
	Samples []int16
}

// FitFrames returns pcm trimmed or zero padded to exactly n samples.
func FitFrames(pcm []int16, n int) []int16 {
	out := make([]int16, n)
	copy(out, pcm)
	return out
}

// SplitSegments cuts pcm at the boundaries. Each segment is a copy.
func SplitSegments(pcm []int16, bounds catalog.BoundaryTable) ([][]int16, error) {
	if err := bounds.Validate(bounds.Total()); err != nil {
		return nil, err
	}
	if len(pcm) < bounds.Total() {
		return nil, fmt.Errorf("%w: %d samples, need %d", ErrShortSource, len(pcm), bounds.Total())
	}

	out := make([][]int16, bounds.Len())
	for i := range out {
		start, end := bounds.Segment(i)
		out[i] = append([]int16(nil), pcm[start:end]...)
	}
	return out, nil
}

// Prepare lays segmentPCM and finalPCM out as cat's files. Both are
// fitted to the catalog lengths first.
func Prepare(cat catalog.Catalog, segmentPCM, finalPCM []int16) ([]File, error) {
	if err := cat.Validate(); err != nil {
		return nil, err
	}

	segments, err := SplitSegments(FitFrames(segmentPCM, cat.SegmentFrames()), cat.Boundaries())
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, cat.Len())
	for i, d := range cat.Segments {
		files = append(files, File{Descriptor: d, Samples: segments[i]})
	}
	files = append(files, File{Descriptor: cat.Final, Samples: FitFrames(finalPCM, cat.FinalFrames())})
	return files, nil
}

// WriteFiles writes files into dir as mono 16-bit WAV. Existing files
// are left alone unless force is set. It returns the paths written.
func WriteFiles(dir string, files []File, sampleRate int, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		err := writeFile(path, f.Samples, sampleRate, force)
		if errors.Is(err, ErrFileExists) {
			continue
		}
		if err != nil {
			return written, fmt.Errorf("writing %s: %w", f.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, samples []int16, sampleRate int, force bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	out, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return ErrFileExists
	}
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(out)
	if err := wav.WriteWAV16(w, sampleRate, samples); err != nil {
		return err
	}
	return w.Flush()
}
