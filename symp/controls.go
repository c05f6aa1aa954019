package symp

// CombCount is the maximum number of sympathetic strings.
const CombCount = 11

const (
	feedbackOffset = 0.96
	feedbackRange  = 0.039
	dampingRange   = 0.5

	// DefaultInputGain matches the plugin's input gain port minimum.
	DefaultInputGain = 0.015
)

// Controls holds the host-owned control values the engine reads on every
// block. The host may change any field between process calls; feedback,
// damping and gains take effect immediately, tunings only on the next
// activation.
type Controls struct {
	// Tunings are string resonance frequencies in Hz. Values <= 0 disable
	// the string.
	Tunings [CombCount]float32

	Feedback  float32 // decay time, 0..1
	Damping   float32 // high-frequency loss per round trip, 0..1
	InputGain float32
	WetLeft   float32 // 0..1
	WetRight  float32 // 0..1
}

// NewDefaultControls mirrors the plugin's port defaults: the first seven
// strings tuned to C4 through B4, the remaining four disabled.
func NewDefaultControls() *Controls {
	return &Controls{
		Tunings:   [CombCount]float32{262, 294, 330, 349, 392, 440, 494},
		Feedback:  0.5,
		Damping:   0,
		InputGain: DefaultInputGain,
		WetLeft:   1.0,
		WetRight:  1.0,
	}
}
