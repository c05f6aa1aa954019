package symp

import (
	"fmt"
	"math"
)

// Bank owns the comb filters active for one activation cycle. Combs are
// created from a tuning snapshot at activation and released at
// deactivation; their delay lengths never change in between.
type Bank struct {
	combs []*comb
}

// Allocate builds one comb per usable tuning, in tuning-index order. A
// tuning is usable when it is strictly positive and low enough that
// floor(sampleRate/tuning) yields at least one sample of delay; anything
// else leaves that string disabled. The bank is replaced atomically: on
// error the previous contents stay untouched.
func (b *Bank) Allocate(tunings []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}
	if len(tunings) > CombCount {
		return fmt.Errorf("too many tunings: %d (max %d)", len(tunings), CombCount)
	}

	combs := make([]*comb, 0, len(tunings))
	for i, freq := range tunings {
		if freq <= 0 {
			continue
		}
		size := int(math.Floor(float64(sampleRate) / float64(freq)))
		if size < 1 {
			// A tuning above the sample rate cannot form a delay line;
			// the string stays silent, same as a disabled tuning.
			continue
		}
		c, err := newComb(size)
		if err != nil {
			return fmt.Errorf("string %d (%.1f Hz): %w", i+1, freq, err)
		}
		combs = append(combs, c)
	}

	b.combs = combs
	return nil
}

// Free releases every active comb. Safe to call on an empty bank.
func (b *Bank) Free() {
	b.combs = nil
}

// Len returns the number of active combs.
func (b *Bank) Len() int {
	return len(b.combs)
}

// DelayLengths returns the delay length of each active comb in order.
func (b *Bank) DelayLengths() []int {
	out := make([]int, len(b.combs))
	for i, c := range b.combs {
		out[i] = c.size()
	}
	return out
}
