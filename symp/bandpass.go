package symp

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// inputBandpass narrows the band driving the strings. Broadband input
// excites every comb at once and can ring harshly; restricting the drive
// to the register the strings are tuned for keeps the response musical.
type inputBandpass struct {
	section *biquad.Section
}

func (f *inputBandpass) step(x float32) float32 {
	return float32(f.section.ProcessSample(float64(x)))
}

func (f *inputBandpass) reset() {
	f.section.Reset()
}

// SetBandpass installs an RBJ band-pass on the input path. Allocates;
// call it from setup code, not from the audio callback.
func (e *Engine) SetBandpass(centerHz float64, q float64) error {
	if centerHz <= 0 || centerHz >= float64(e.sampleRate)/2 {
		return fmt.Errorf("bandpass center out of range: %.1f Hz at %d Hz", centerHz, e.sampleRate)
	}
	if q <= 0 {
		return fmt.Errorf("bandpass q must be > 0: %g", q)
	}
	e.bandpass = &inputBandpass{
		section: biquad.NewSection(design.Bandpass(centerHz, q, float64(e.sampleRate))),
	}
	return nil
}

// ClearBandpass removes the input band-pass.
func (e *Engine) ClearBandpass() {
	e.bandpass = nil
}
