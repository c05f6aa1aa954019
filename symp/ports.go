package symp

import "fmt"

// Positional port indices in the original descriptor order. Ports 0
// through CombCount-1 are the string tunings; hosts that bind by position
// can address Controls fields through this table.
const (
	PortFeedback = CombCount + iota
	PortDamping
	PortGainInput
	PortWetLeft
	PortWetRight
	PortInput
	PortOutput1
	PortOutput2

	PortCount = CombCount + 8
)

// PortName returns the descriptor name for a port index.
func PortName(port int) string {
	if port >= 0 && port < CombCount {
		return fmt.Sprintf("String%d Tuning", port+1)
	}
	switch port {
	case PortFeedback:
		return "Feedback"
	case PortDamping:
		return "Damping"
	case PortGainInput:
		return "Gain Input"
	case PortWetLeft:
		return "Wet Left"
	case PortWetRight:
		return "Wet Right"
	case PortInput:
		return "Input Mono"
	case PortOutput1:
		return "Output Left"
	case PortOutput2:
		return "Output Right"
	}
	return ""
}

// SetPortValue writes a control value by positional port index.
func (c *Controls) SetPortValue(port int, v float32) error {
	if port >= 0 && port < CombCount {
		c.Tunings[port] = v
		return nil
	}
	switch port {
	case PortFeedback:
		c.Feedback = v
	case PortDamping:
		c.Damping = v
	case PortGainInput:
		c.InputGain = v
	case PortWetLeft:
		c.WetLeft = v
	case PortWetRight:
		c.WetRight = v
	case PortInput, PortOutput1, PortOutput2:
		return fmt.Errorf("port %d (%s) is an audio port", port, PortName(port))
	default:
		return fmt.Errorf("unknown port %d", port)
	}
	return nil
}

// PortValue reads a control value by positional port index.
func (c *Controls) PortValue(port int) (float32, error) {
	if port >= 0 && port < CombCount {
		return c.Tunings[port], nil
	}
	switch port {
	case PortFeedback:
		return c.Feedback, nil
	case PortDamping:
		return c.Damping, nil
	case PortGainInput:
		return c.InputGain, nil
	case PortWetLeft:
		return c.WetLeft, nil
	case PortWetRight:
		return c.WetRight, nil
	case PortInput, PortOutput1, PortOutput2:
		return 0, fmt.Errorf("port %d (%s) is an audio port", port, PortName(port))
	}
	return 0, fmt.Errorf("unknown port %d", port)
}
