package symp

// coeffs caches the coefficients derived from the raw feedback and damping
// controls, recomputing each only when its raw value changes. Holding a
// control steady across blocks, the common case, costs two comparisons.
type coeffs struct {
	rawFeedback    float32
	scaledFeedback float32
	rawDamping     float32
	damp1          float32
	damp2          float32
}

// newCoeffs seeds the last-seen raw values outside the valid control range
// so the first refresh always computes.
func newCoeffs() coeffs {
	return coeffs{rawFeedback: -1, rawDamping: -1}
}

func (k *coeffs) refresh(rawFeedback float32, rawDamping float32) {
	if rawFeedback != k.rawFeedback {
		k.rawFeedback = rawFeedback
		k.scaledFeedback = feedbackOffset + rawFeedback*feedbackRange
	}
	if rawDamping != k.rawDamping {
		k.rawDamping = rawDamping
		k.damp1 = rawDamping * dampingRange
		k.damp2 = 1 - k.damp1
	}
}

func clampWet(left float32, right float32) (float32, float32) {
	return clamp01(left), clamp01(right)
}
