// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"fmt"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/media"
)

// DataProvider is what a synthesis engine reads. The slices stay valid
// for the provider's lifetime and hold zeros until loaded.
type DataProvider interface {
	// SampleData is the concatenated segment region.
	SampleData() []int16
	// NoiseSample is the final region.
	NoiseSample() []int16
	Boundaries() catalog.BoundaryTable
	IsLoaded() bool
}

var _ DataProvider = (*Loader)(nil)

// Loader is the load state machine. Step, Reset and the accessors are
// meant to be called from a single goroutine.
type Loader struct {
	storage media.Storage
	cat     catalog.Catalog
	bounds  catalog.BoundaryTable
	folder  string
	timeout int

	arena    []int16
	segments []int16
	final    []int16

	state     LoadState
	segment   int
	loaded    int
	folderIdx int
	files     FileIndexMap
	resolved  FileIndexMap
	retry     retryController
	read      asyncRead

	// err is the bare cause of the last failure. When it came from
	// validation, fault holds the detail and LastError formats it.
	err     error
	fault   fault
	faulted bool
}

// New allocates the regions for cat and returns an idle Loader.
func New(storage media.Storage, cat catalog.Catalog, opts Options) (*Loader, error) {
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	folder := opts.Folder
	if folder == "" {
		folder = cat.Folder
	}

	segFrames := cat.SegmentFrames()
	arena := make([]int16, segFrames+cat.FinalFrames())

	l := &Loader{
		storage:   storage,
		cat:       cat,
		bounds:    cat.Boundaries(),
		folder:    folder,
		timeout:   opts.RequestTimeoutCycles,
		arena:     arena,
		segments:  arena[:segFrames:segFrames],
		final:     arena[segFrames:],
		folderIdx: -1,
		files:     make(FileIndexMap, cat.Len()),
		resolved:  make(FileIndexMap, cat.Len()),
		retry:     retryController{delay: opts.RetryDelayCycles, max: opts.MaxRetries},
	}
	l.read.init()

	return l, nil
}

// Step advances the load by at most one transition and reports whether
// every file is loaded. Call it once per control cycle. It never
// allocates, failures included.
func (l *Loader) Step() bool {
	if l.state == Complete {
		return true
	}

	if !l.storage.IsMounted() {
		if l.state.loading() {
			l.Reset()
			l.err = ErrMediaUnavailable
		}
		return false
	}

	switch l.state {
	case Failed:
		if l.retry.exhausted() || !l.retry.tick() {
			return false
		}
		l.state = Idle
		fallthrough

	case Idle:
		idx, err := FindFolder(l.storage, l.folder)
		if err != nil {
			l.fail(err)
			return false
		}
		l.folderIdx = idx
		l.state = Validating

	case Validating:
		if err := validateFolder(l.storage, l.folderIdx, l.cat, l.files, l.resolved, &l.fault); err != nil {
			l.fail(err)
			l.faulted = true
			return false
		}
		l.loaded = 0
		l.segment = 0
		l.state = LoadingSegment
		l.issue(l.cat.Segments[0], l.segmentDst(0))

	case LoadingSegment, LoadingFinal:
		return l.await()
	}

	return false
}

func (l *Loader) await() bool {
	done, ok := l.read.poll()
	if !done {
		l.read.age++
		if l.timeout > 0 && l.read.age >= l.timeout {
			l.read.abandon()
			l.fail(ErrReadTimeout)
		}
		return false
	}
	if !ok {
		l.fail(ErrReadFailed)
		return false
	}

	l.loaded++
	if l.state == LoadingFinal {
		l.state = Complete
		return true
	}

	l.segment++
	if l.segment < len(l.cat.Segments) {
		l.issue(l.cat.Segments[l.segment], l.segmentDst(l.segment))
		return false
	}

	l.state = LoadingFinal
	l.issue(l.cat.Final, l.final)
	return false
}

func (l *Loader) segmentDst(i int) []int16 {
	start, end := l.bounds.Segment(i)
	return l.segments[start:end:end]
}

func (l *Loader) issue(d catalog.Descriptor, dst []int16) {
	if !l.read.issue(l.storage, l.folderIdx, l.files[d.Index], d.Channels, d.BitDepth, dst) {
		l.fail(ErrReadRejected)
	}
}

func (l *Loader) fail(err error) {
	l.err = err
	l.faulted = false
	l.state = Failed
	l.read.abandon()
	l.retry.fail()
}

// Reset abandons any load in progress, zeroes the regions and clears
// the retry count. The next Step starts a fresh load.
func (l *Loader) Reset() {
	l.read.quiesce()
	clear(l.arena)
	for i := range l.files {
		l.files[i] = -1
	}

	l.state = Idle
	l.segment = 0
	l.loaded = 0
	l.folderIdx = -1
	l.retry.reset()
	l.err = nil
	l.faulted = false
}

func (l *Loader) State() LoadState { return l.state }

// Segment is the segment being read in LoadingSegment.
func (l *Loader) Segment() int { return l.segment }

func (l *Loader) IsLoaded() bool { return l.state == Complete }

// Progress reports how many catalog files have been read in the current
// attempt.
func (l *Loader) Progress() (loaded, total int) { return l.loaded, l.cat.Len() }

// Retries is the number of failed attempts since the last Reset.
func (l *Loader) Retries() int { return l.retry.count }

// Exhausted reports whether the loader has given up until Reset.
func (l *Loader) Exhausted() bool { return l.state == Failed && l.retry.exhausted() }

// LastError is the cause of the most recent failure, or nil. Once the
// loader has given up it also matches ErrRetriesExhausted.
func (l *Loader) LastError() error {
	err := l.err
	if err == nil {
		return nil
	}
	if l.faulted {
		err = l.fault.err()
	}
	if l.Exhausted() {
		err = fmt.Errorf("%w: %w", ErrRetriesExhausted, err)
	}
	return err
}

// Pending reports whether a read is in flight.
func (l *Loader) Pending() bool { return l.read.pending }

func (l *Loader) Catalog() catalog.Catalog { return l.cat }

func (l *Loader) Storage() media.Storage { return l.storage }

func (l *Loader) SampleData() []int16 { return l.segments }

func (l *Loader) NoiseSample() []int16 { return l.final }

// Region returns the buffer for id.
func (l *Loader) Region(id catalog.RegionID) []int16 {
	if id == catalog.FinalRegion {
		return l.final
	}
	return l.segments
}

func (l *Loader) Boundaries() catalog.BoundaryTable { return l.bounds }
