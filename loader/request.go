// SPDX-License-Identifier: EPL-2.0

package loader

import (
	"runtime"
	"sync/atomic"

	"github.com/ik5/samplebank/media"
)

// asyncRead is the one read request a Loader reuses for every file.
//
// Each issue gets a new generation, carried as the request tag. The
// callback publishes (generation<<1 | ok) into token, never replacing a
// newer generation with an older one. The poller treats the read as
// done once token carries the generation it issued, so the result and
// the completion become visible together and a callback from an
// abandoned read cannot complete a later one. The guard keeps it from
// writing its destination, too, when the storage honors it.
type asyncRead struct {
	req     media.ReadRequest
	guard   media.WriteGuard
	gen     uint64
	token   atomic.Uint64
	pending bool
	age     int
}

func (r *asyncRead) init() {
	r.req.Callback = r.complete
	r.req.CallbackData = r
	r.req.Guard = &r.guard
}

// complete runs on the storage's goroutine.
func (r *asyncRead) complete(_ any, tag uint64, ok bool) {
	v := tag << 1
	if ok {
		v |= 1
	}
	for {
		cur := r.token.Load()
		if cur>>1 >= tag {
			return
		}
		if r.token.CompareAndSwap(cur, v) {
			return
		}
	}
}

// issue starts a read of dst from file. It reports false if the storage
// refused the request.
func (r *asyncRead) issue(s media.Storage, folder, file, channels, bitDepth int, dst []int16) bool {
	r.gen++
	r.req.Folder = folder
	r.req.File = file
	r.req.Dst = dst
	r.req.NumFrames = len(dst) / channels
	r.req.StartFrame = 0
	r.req.Channels = channels
	r.req.BitDepth = bitDepth
	r.req.Tag = r.gen
	r.guard.Arm(r.gen)

	r.pending = true
	r.age = 0
	if !s.ReadFrames(&r.req) {
		r.pending = false
		return false
	}
	return true
}

// poll reports whether the current read has completed and how.
func (r *asyncRead) poll() (done, ok bool) {
	v := r.token.Load()
	if v>>1 != r.gen {
		return false, false
	}
	r.pending = false
	return true, v&1 == 1
}

// abandon forgets the current read. Its callback, if it ever comes,
// carries a generation the poller no longer waits for. It reports true
// if the storage is copying into the destination right now.
func (r *asyncRead) abandon() bool {
	r.pending = false
	r.age = 0
	r.req.Dst = nil
	return r.guard.Withdraw()
}

// quiesce abandons the current read and waits out a copy the storage
// had already started, so the destination is not written afterwards.
// The wait is at most one copy of a single file.
func (r *asyncRead) quiesce() {
	if !r.abandon() {
		return
	}
	for r.guard.Writing() {
		runtime.Gosched()
	}
}
