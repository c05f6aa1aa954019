package symp

import (
	"fmt"

	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
)

// comb is one tuned string: a delay line whose output recirculates through
// a one-pole damping filter and a feedback attenuator. The buffer length
// sets the resonance frequency and is fixed for the comb's lifetime.
type comb struct {
	buffer []float32
	idx    int
	store  float32
}

func newComb(size int) (*comb, error) {
	if size < 1 {
		return nil, fmt.Errorf("comb size must be >= 1: %d", size)
	}
	return &comb{buffer: make([]float32, size)}, nil
}

// step advances the string by one sample and returns the delayed sample.
// damp1+damp2 == 1; feedback < 1 keeps the loop bounded.
func (c *comb) step(in float32, feedback float32, damp1 float32, damp2 float32) float32 {
	out := c.buffer[c.idx]
	c.store = float32(dspcore.FlushDenormals(float64(out*damp2 + c.store*damp1)))
	c.buffer[c.idx] = in + c.store*feedback
	c.idx++
	if c.idx >= len(c.buffer) {
		c.idx = 0
	}
	return out
}

func (c *comb) size() int {
	return len(c.buffer)
}
