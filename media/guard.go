// SPDX-License-Identifier: EPL-2.0

package media

import "sync/atomic"

const (
	guardIdle = iota
	guardArmed
	guardWriting
	guardWithdrawn
)

// WriteGuard lets the issuer of a read take it back after the storage
// accepted it. The storage claims the guard right before it writes Dst
// and releases it right after; once the issuer withdraws the request or
// arms the guard for a newer tag, the claim fails and Dst stays as it
// is.
//
// The state is one word: the tag in the high bits, the phase in the low
// two.
type WriteGuard struct {
	v atomic.Uint64
}

// Arm makes tag the only request allowed to write.
func (g *WriteGuard) Arm(tag uint64) { g.v.Store(tag<<2 | guardArmed) }

// Claim starts the write for tag. It fails if the request was withdrawn
// or replaced.
func (g *WriteGuard) Claim(tag uint64) bool {
	return g.v.CompareAndSwap(tag<<2|guardArmed, tag<<2|guardWriting)
}

// Release ends a write started by Claim.
func (g *WriteGuard) Release(tag uint64) {
	g.v.CompareAndSwap(tag<<2|guardWriting, tag<<2|guardIdle)
}

// Withdraw stops any later Claim. It reports true if a claimed write is
// still running; Writing turns false once it ends.
func (g *WriteGuard) Withdraw() bool {
	for {
		v := g.v.Load()
		switch v & 3 {
		case guardWriting:
			return true
		case guardArmed:
			if g.v.CompareAndSwap(v, v&^3|guardWithdrawn) {
				return false
			}
		default:
			return false
		}
	}
}

// Writing reports whether a claimed write is in progress.
func (g *WriteGuard) Writing() bool { return g.v.Load()&3 == guardWriting }
