// Package participants selects how many people an activity is requested for.
package participants

import (
	"fmt"
	"math/rand/v2"
)

// Range is a half-open interval [Min, Max) of participant counts.
type Range struct {
	Min int
	Max int
}

// Validate reports whether the range contains at least one value.
func (r Range) Validate() error {
	if r.Max <= r.Min {
		return fmt.Errorf("empty participant range [%d, %d)", r.Min, r.Max)
	}
	return nil
}

// Pick returns a pseudo-random count v with Min <= v < Max. The upper bound
// is never selected. Pick panics if the range is empty; call Validate first.
func (r Range) Pick(rng *rand.Rand) int {
	return r.Min + rng.IntN(r.Max-r.Min)
}

// String formats the range in interval notation.
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Min, r.Max)
}
