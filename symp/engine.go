package symp

import "fmt"

type engineState int

const (
	stateInstantiated engineState = iota
	stateActivated
	stateDeactivated
)

// Engine is one instance of the sympathetic string effect. It is
// single-threaded: the host serializes Activate, the process calls and
// Deactivate. Process calls never allocate; all allocation happens in
// Activate.
type Engine struct {
	sampleRate int
	controls   *Controls
	bank       Bank
	coeffs     coeffs
	state      engineState
	bandpass   *inputBandpass
}

// New creates an engine bound to host-owned controls. The sample rate is
// fixed for the engine's lifetime. A nil controls gets the port defaults.
func New(sampleRate int, controls *Controls) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %d", sampleRate)
	}
	if controls == nil {
		controls = NewDefaultControls()
	}
	return &Engine{
		sampleRate: sampleRate,
		controls:   controls,
		coeffs:     newCoeffs(),
	}, nil
}

// SampleRate returns the fixed engine sample rate.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// Controls returns the host-owned control block.
func (e *Engine) Controls() *Controls {
	return e.controls
}

// ActiveStrings returns the number of combs built at the last activation.
func (e *Engine) ActiveStrings() int {
	return e.bank.Len()
}

// DelayLengths returns the delay length in samples of each active string.
func (e *Engine) DelayLengths() []int {
	return e.bank.DelayLengths()
}

// Activate snapshots the current tunings and builds the comb bank. Tuning
// changes made while activated do not take effect until the next
// deactivate/activate cycle. On error the engine stays inactive with no
// combs allocated.
func (e *Engine) Activate() error {
	if e.state == stateActivated {
		return fmt.Errorf("activate called on an active engine")
	}
	if err := e.bank.Allocate(e.controls.Tunings[:], e.sampleRate); err != nil {
		return err
	}
	if e.bandpass != nil {
		e.bandpass.reset()
	}
	e.state = stateActivated
	return nil
}

// Deactivate frees the comb bank. Idempotent; must not race a process call.
func (e *Engine) Deactivate() {
	e.bank.Free()
	if e.state == stateActivated {
		e.state = stateDeactivated
	}
}

// ProcessReplace renders one block, overwriting both output buffers with
// the wet signal.
func (e *Engine) ProcessReplace(in []float32, outL []float32, outR []float32) {
	wetL, wetR := e.beginBlock(in, outL, outR)
	inputGain := e.controls.InputGain
	feedback := e.coeffs.scaledFeedback
	damp1, damp2 := e.coeffs.damp1, e.coeffs.damp2
	combs := e.bank.combs
	bp := e.bandpass

	for i := range in {
		x := in[i] * inputGain
		if bp != nil {
			x = bp.step(x)
		}
		var mix float32
		for _, c := range combs {
			mix += c.step(x, feedback, damp1, damp2)
		}
		outL[i] = mix * wetL
		outR[i] = mix * wetR
	}
}

// ProcessAdding renders one block, accumulating the wet signal scaled by
// addingGain into the output buffers. A channel whose wet gain is zero is
// left untouched.
func (e *Engine) ProcessAdding(in []float32, outL []float32, outR []float32, addingGain float32) {
	wetL, wetR := e.beginBlock(in, outL, outR)
	inputGain := e.controls.InputGain
	feedback := e.coeffs.scaledFeedback
	damp1, damp2 := e.coeffs.damp1, e.coeffs.damp2
	combs := e.bank.combs
	bp := e.bandpass
	gainL := addingGain * wetL
	gainR := addingGain * wetR
	addL := wetL > 0
	addR := wetR > 0

	for i := range in {
		x := in[i] * inputGain
		if bp != nil {
			x = bp.step(x)
		}
		var mix float32
		for _, c := range combs {
			mix += c.step(x, feedback, damp1, damp2)
		}
		if addL {
			outL[i] += mix * gainL
		}
		if addR {
			outR[i] += mix * gainR
		}
	}
}

// beginBlock enforces the process contract and refreshes the per-block
// control state shared by both render modes.
func (e *Engine) beginBlock(in []float32, outL []float32, outR []float32) (float32, float32) {
	if e.state != stateActivated {
		panic("symp: process called while engine is not activated")
	}
	if len(outL) != len(in) || len(outR) != len(in) {
		panic("symp: audio buffer length mismatch")
	}
	e.coeffs.refresh(e.controls.Feedback, e.controls.Damping)
	return clampWet(e.controls.WetLeft, e.controls.WetRight)
}
