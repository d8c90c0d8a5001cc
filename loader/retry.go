// SPDX-License-Identifier: EPL-2.0

package loader

// retryController counts failed attempts and holds off the next one
// for a fixed number of steps.
type retryController struct {
	delay int
	max   int

	count int
	wait  int
}

func (r *retryController) fail() {
	r.count++
	r.wait = r.delay
}

// tick spends one step of the cooldown. It reports true only on a step
// that finds the cooldown already over, so a delay of n holds off the
// next attempt for n steps.
func (r *retryController) tick() bool {
	if r.wait > 0 {
		r.wait--
		return false
	}
	return true
}

func (r *retryController) exhausted() bool { return r.count >= r.max }

func (r *retryController) reset() {
	r.count = 0
	r.wait = 0
}
