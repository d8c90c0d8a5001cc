// SPDX-License-Identifier: EPL-2.0

package loader

import "fmt"

// LoadState is the position of a Loader in its load cycle.
type LoadState uint8

const (
	Idle LoadState = iota
	Validating
	// LoadingSegment waits on the read of Loader.Segment().
	LoadingSegment
	LoadingFinal
	Complete
	Failed
)

var stateNames = [...]string{
	Idle:           "idle",
	Validating:     "validating",
	LoadingSegment: "loading segment",
	LoadingFinal:   "loading final",
	Complete:       "complete",
	Failed:         "failed",
}

func (s LoadState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("LoadState(%d)", uint8(s))
}

func (s LoadState) loading() bool {
	return s == Validating || s == LoadingSegment || s == LoadingFinal
}
