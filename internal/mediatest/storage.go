// SPDX-License-Identifier: EPL-2.0

// Package mediatest provides a scripted media.Storage for tests. Reads
// are accepted and then held until the test completes them, so every
// interleaving of poll and callback can be driven by hand.
package mediatest

import (
	"fmt"
	"sync"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/media"
)

// File is a file on the fake media. Data holds its mono samples.
type File struct {
	Name     string
	Channels int
	BitDepth int
	Frames   int
	Data     []int16
}

type Folder struct {
	Name  string
	Files []File
}

type pendingRead struct {
	req  media.ReadRequest
	data []int16
}

// Storage is a fake media.Storage. It is safe for concurrent use.
type Storage struct {
	mtx sync.Mutex

	mounted      bool
	reject       bool
	autoComplete bool
	folders      []Folder

	pending []pendingRead
	issued  []media.ReadRequest
	scans   int
}

// New returns mounted storage holding folders.
func New(folders ...Folder) *Storage {
	return &Storage{mounted: true, folders: folders}
}

// SetMounted inserts or removes the media.
func (s *Storage) SetMounted(v bool) {
	s.mtx.Lock()
	s.mounted = v
	s.mtx.Unlock()
}

// SetReject makes ReadFrames refuse every request.
func (s *Storage) SetReject(v bool) {
	s.mtx.Lock()
	s.reject = v
	s.mtx.Unlock()
}

// SetAutoComplete makes ReadFrames finish successfully before it
// returns, invoking the callback on the caller's goroutine.
func (s *Storage) SetAutoComplete(v bool) {
	s.mtx.Lock()
	s.autoComplete = v
	s.mtx.Unlock()
}

// SetFolders replaces the media contents.
func (s *Storage) SetFolders(folders ...Folder) {
	s.mtx.Lock()
	s.folders = folders
	s.mtx.Unlock()
}

// Pending is the number of accepted reads not yet completed.
func (s *Storage) Pending() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.pending)
}

// Issued returns a copy of every accepted request, oldest first.
func (s *Storage) Issued() []media.ReadRequest {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return append([]media.ReadRequest(nil), s.issued...)
}

// Scans counts NumFolders calls, one per folder search.
func (s *Storage) Scans() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.scans
}

// Complete finishes the oldest pending read. On success the file data
// is copied into the destination first. It reports false if nothing was
// pending.
func (s *Storage) Complete(ok bool) bool {
	s.mtx.Lock()
	if len(s.pending) == 0 {
		s.mtx.Unlock()
		return false
	}
	p := s.pending[0]
	s.pending = s.pending[1:]
	s.mtx.Unlock()

	finish(p, ok)
	return true
}

// finish writes the file data only if the request's guard, when it has
// one, can still be claimed; a withdrawn read completes with failure.
func finish(p pendingRead, ok bool) {
	g := p.req.Guard
	if ok && g != nil && !g.Claim(p.req.Tag) {
		ok = false
	}
	if ok {
		n := p.req.NumFrames * p.req.Channels
		src := p.data[min(p.req.StartFrame*p.req.Channels, len(p.data)):]
		copy(p.req.Dst[:n], src)
		if g != nil {
			g.Release(p.req.Tag)
		}
	}
	p.req.Callback(p.req.CallbackData, p.req.Tag, ok)
}

func (s *Storage) IsMounted() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.mounted
}

func (s *Storage) NumFolders() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.scans++
	if !s.mounted {
		return 0
	}
	return len(s.folders)
}

func (s *Storage) FolderInfo(folder int) (media.FolderInfo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if !s.mounted {
		return media.FolderInfo{}, media.ErrNotMounted
	}
	if folder < 0 || folder >= len(s.folders) {
		return media.FolderInfo{}, media.ErrNoSuchFolder
	}
	f := s.folders[folder]
	return media.FolderInfo{Name: f.Name, NumFiles: len(f.Files)}, nil
}

func (s *Storage) FileInfo(folder, file int) (media.FileInfo, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	f, err := s.file(folder, file)
	if err != nil {
		return media.FileInfo{}, err
	}
	return media.FileInfo{
		Name:       f.Name,
		Channels:   f.Channels,
		BitDepth:   f.BitDepth,
		Frames:     f.Frames,
		SampleRate: catalog.ElementsSampleRate,
	}, nil
}

func (s *Storage) file(folder, file int) (File, error) {
	if !s.mounted {
		return File{}, media.ErrNotMounted
	}
	if folder < 0 || folder >= len(s.folders) {
		return File{}, media.ErrNoSuchFolder
	}
	files := s.folders[folder].Files
	if file < 0 || file >= len(files) {
		return File{}, media.ErrNoSuchFile
	}
	return files[file], nil
}

func (s *Storage) ReadFrames(req *media.ReadRequest) bool {
	s.mtx.Lock()
	f, err := s.file(req.Folder, req.File)
	if err != nil || s.reject || len(req.Dst) < req.NumFrames*req.Channels {
		s.mtx.Unlock()
		return false
	}

	p := pendingRead{req: *req, data: f.Data}
	s.issued = append(s.issued, p.req)
	if s.autoComplete {
		s.mtx.Unlock()
		finish(p, true)
		return true
	}
	s.pending = append(s.pending, p)
	s.mtx.Unlock()
	return true
}

// Pattern returns n non-zero samples unique to seed, so loaded regions
// can be told apart from each other and from zero.
func Pattern(seed, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = int16((seed*7919+i)%32000 + 1)
	}
	return out
}

// CatalogFolder builds a folder holding every file cat expects, with
// Pattern data, listed in reverse catalog order.
func CatalogFolder(cat catalog.Catalog) Folder {
	entries := cat.Entries()
	f := Folder{Name: cat.Folder, Files: make([]File, 0, len(entries))}
	for i := len(entries) - 1; i >= 0; i-- {
		d := entries[i]
		f.Files = append(f.Files, File{
			Name:     d.Name,
			Channels: d.Channels,
			BitDepth: d.BitDepth,
			Frames:   d.Frames,
			Data:     Pattern(d.Index, d.Frames*d.Channels),
		})
	}
	return f
}

// Lookup returns a pointer to the named file in f for editing.
func (f *Folder) Lookup(name string) *File {
	for i := range f.Files {
		if f.Files[i].Name == name {
			return &f.Files[i]
		}
	}
	panic(fmt.Sprintf("mediatest: no file %q in %q", name, f.Name))
}
