// SPDX-License-Identifier: EPL-2.0

package media

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ik5/samplebank/audio"
	"github.com/ik5/samplebank/utils"
)

// CardOptions tunes a Card.
type CardOptions struct {
	Logger *slog.Logger
	// Latency is added before every read to mimic a slow card.
	Latency time.Duration
}

type cardFile struct {
	info FileInfo
	path string
}

type cardFolder struct {
	name  string
	files []cardFile
}

type readJob struct {
	req  ReadRequest
	path string
}

// Card is a directory mounted as removable media. It serves one read at
// a time on a worker goroutine and queues at most one more.
type Card struct {
	root     string
	registry *audio.Registry
	logger   *slog.Logger
	latency  time.Duration

	mounted atomic.Bool
	closed  atomic.Bool

	mtx     sync.RWMutex
	folders []cardFolder

	queue chan readJob
	done  chan struct{}
	wg    sync.WaitGroup

	// worker-owned
	scratch []int16
	buf     []float32
}

func NewCard(root string, registry *audio.Registry, opts CardOptions) *Card {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Card{
		root:     root,
		registry: registry,
		logger:   logger,
		latency:  opts.Latency,
		queue:    make(chan readJob, 1),
		done:     make(chan struct{}),
		buf:      make([]float32, 4096),
	}

	c.wg.Add(1)
	go c.run()

	return c
}

func (c *Card) Root() string { return c.root }

// Mount scans the root directory and makes its contents visible.
func (c *Card) Mount() error {
	if c.closed.Load() {
		return ErrClosed
	}

	folders, err := c.scan()
	if err != nil {
		return err
	}

	c.mtx.Lock()
	c.folders = folders
	c.mtx.Unlock()
	c.mounted.Store(true)

	c.logger.Info("media: mounted", "root", c.root, "folders", len(folders))
	return nil
}

// Unmount hides the card contents. A read in progress completes with
// failure.
func (c *Card) Unmount() {
	// Flipped under the write lock so that once IsMounted reports false
	// no copy into a destination is still running.
	c.mtx.Lock()
	was := c.mounted.Swap(false)
	c.folders = nil
	c.mtx.Unlock()
	if !was {
		return
	}

	c.logger.Info("media: unmounted", "root", c.root)
}

// Close unmounts the card and stops the worker. Queued reads complete
// with failure.
func (c *Card) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.Unmount()
	close(c.done)
	c.wg.Wait()
	return nil
}

func (c *Card) scan() ([]cardFolder, error) {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("reading card root: %w", err)
	}

	var folders []cardFolder
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(c.root, e.Name())
		files, err := c.scanFolder(dir)
		if err != nil {
			c.logger.Warn("media: skipping folder", "folder", dir, "err", err)
			continue
		}
		folders = append(folders, cardFolder{name: e.Name(), files: files})
	}
	return folders, nil
}

func (c *Card) scanFolder(dir string) ([]cardFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []cardFile
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		dec, ok := c.registry.ForFile(e.Name())
		if !ok {
			continue
		}

		path := filepath.Join(dir, e.Name())
		info, err := probe(dec, path)
		if err != nil {
			// Listed with empty metadata so validation reports it.
			c.logger.Warn("media: cannot probe file", "path", path, "err", err)
		}

		files = append(files, cardFile{
			path: path,
			info: FileInfo{
				Name:       e.Name(),
				Channels:   info.Channels,
				BitDepth:   info.BitDepth,
				Frames:     info.Frames,
				SampleRate: info.SampleRate,
			},
		})
	}
	return files, nil
}

func probe(dec audio.Decoder, path string) (audio.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Info{}, err
	}
	defer f.Close()

	return dec.Probe(f)
}

func (c *Card) IsMounted() bool { return c.mounted.Load() }

func (c *Card) NumFolders() int {
	if !c.mounted.Load() {
		return 0
	}
	c.mtx.RLock()
	defer c.mtx.RUnlock()
	return len(c.folders)
}

func (c *Card) FolderInfo(folder int) (FolderInfo, error) {
	if !c.mounted.Load() {
		return FolderInfo{}, ErrNotMounted
	}
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	if folder < 0 || folder >= len(c.folders) {
		return FolderInfo{}, fmt.Errorf("%w: %d", ErrNoSuchFolder, folder)
	}
	f := c.folders[folder]
	return FolderInfo{Name: f.name, NumFiles: len(f.files)}, nil
}

func (c *Card) FileInfo(folder, file int) (FileInfo, error) {
	f, err := c.lookup(folder, file)
	if err != nil {
		return FileInfo{}, err
	}
	return f.info, nil
}

func (c *Card) lookup(folder, file int) (cardFile, error) {
	if !c.mounted.Load() {
		return cardFile{}, ErrNotMounted
	}
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	if folder < 0 || folder >= len(c.folders) {
		return cardFile{}, fmt.Errorf("%w: %d", ErrNoSuchFolder, folder)
	}
	files := c.folders[folder].files
	if file < 0 || file >= len(files) {
		return cardFile{}, fmt.Errorf("%w: %d/%d", ErrNoSuchFile, folder, file)
	}
	return files[file], nil
}

// ReadFrames queues req. It is rejected when the card is unmounted or
// closed, the request is malformed, or a read is already queued.
func (c *Card) ReadFrames(req *ReadRequest) bool {
	if req == nil || req.Callback == nil || c.closed.Load() {
		return false
	}
	if req.NumFrames <= 0 || req.StartFrame < 0 || req.Channels <= 0 || req.BitDepth != 16 {
		return false
	}
	if len(req.Dst) < req.NumFrames*req.Channels {
		return false
	}

	f, err := c.lookup(req.Folder, req.File)
	if err != nil {
		return false
	}

	select {
	case c.queue <- readJob{req: *req, path: f.path}:
		return true
	default:
		return false
	}
}

func (c *Card) run() {
	defer c.wg.Done()

	for {
		select {
		case <-c.done:
			c.drain()
			return
		case job := <-c.queue:
			c.serve(job)
		}
	}
}

func (c *Card) drain() {
	for {
		select {
		case job := <-c.queue:
			job.req.Callback(job.req.CallbackData, job.req.Tag, false)
		default:
			return
		}
	}
}

func (c *Card) serve(job readJob) {
	trace := uuid.New().String()
	c.logger.Debug("media: read started", "trace_id", trace, "path", job.path,
		"frames", job.req.NumFrames, "start", job.req.StartFrame, "tag", job.req.Tag)

	err := c.read(job)
	if err != nil {
		c.logger.Warn("media: read failed", "trace_id", trace, "path", job.path, "err", err)
	} else {
		c.logger.Debug("media: read complete", "trace_id", trace)
	}

	job.req.Callback(job.req.CallbackData, job.req.Tag, err == nil)
}

func (c *Card) read(job readJob) error {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		select {
		case <-t.C:
		case <-c.done:
			t.Stop()
			return ErrClosed
		}
	}

	if !c.mounted.Load() {
		return ErrNotMounted
	}

	req := job.req
	want := req.NumFrames * req.Channels
	if cap(c.scratch) < want {
		c.scratch = make([]int16, want)
	}
	c.scratch = c.scratch[:want]

	if err := c.decode(job.path, req, c.scratch); err != nil {
		return err
	}

	return c.commit(req, c.scratch)
}

// commit copies decoded samples into the destination. An unmount or a
// withdrawal during decode discards them.
func (c *Card) commit(req ReadRequest, samples []int16) error {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	if !c.mounted.Load() {
		return ErrNotMounted
	}
	if g := req.Guard; g != nil {
		if !g.Claim(req.Tag) {
			return ErrWithdrawn
		}
		defer g.Release(req.Tag)
	}

	copy(req.Dst[:len(samples)], samples)
	return nil
}

func (c *Card) decode(path string, req ReadRequest, out []int16) error {
	dec, ok := c.registry.ForFile(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	var s audio.Source = src
	switch {
	case src.Channels() == req.Channels:
	case req.Channels == 1:
		s = audio.NewMonoMixer(src)
	default:
		return fmt.Errorf("%w: %d channels from %d", ErrUnsupportedFormat, req.Channels, src.Channels())
	}

	skip := req.StartFrame * req.Channels
	n, stalls := 0, 0
	for n < len(out) {
		got, err := s.ReadSamples(c.buf)
		for _, v := range c.buf[:got] {
			if skip > 0 {
				skip--
				continue
			}
			if n == len(out) {
				break
			}
			out[n] = utils.Float32ToInt16(v)
			n++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if got == 0 {
			if stalls++; stalls > 16 {
				return io.ErrNoProgress
			}
		}
	}

	if n < len(out) {
		return fmt.Errorf("%w: %d of %d samples", ErrShortRead, n, len(out))
	}
	return nil
}
