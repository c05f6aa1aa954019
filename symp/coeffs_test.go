package symp

import (
	"fmt"
	"math"
	"testing"
)

func TestRefreshDerivesCoefficients(t *testing.T) {
	k := newCoeffs()
	k.refresh(1.0, 0.4)

	wantFeedback := float32(feedbackOffset + 1.0*feedbackRange)
	if k.scaledFeedback != wantFeedback {
		t.Errorf("scaledFeedback = %v, want %v", k.scaledFeedback, wantFeedback)
	}
	if k.damp1 != 0.2 {
		t.Errorf("damp1 = %v, want 0.2", k.damp1)
	}
	if math.Abs(float64(k.damp1+k.damp2-1)) > 1e-7 {
		t.Errorf("damp1+damp2 = %v, want 1", k.damp1+k.damp2)
	}
}

func TestRefreshIsMemoized(t *testing.T) {
	k := newCoeffs()
	k.refresh(0.5, 0.2)
	before := k

	k.refresh(0.5, 0.2)
	if k != before {
		t.Errorf("coeffs changed on identical refresh: %+v vs %+v", k, before)
	}

	k.refresh(0.7, 0.2)
	if k.scaledFeedback == before.scaledFeedback {
		t.Errorf("scaledFeedback not recomputed on feedback change")
	}
	if k.damp1 != before.damp1 || k.damp2 != before.damp2 {
		t.Errorf("damping coefficients recomputed without a damping change")
	}
}

func TestFirstRefreshComputesZeroRawValues(t *testing.T) {
	// Raw values of exactly 0 must still produce derived coefficients on
	// the first refresh.
	k := newCoeffs()
	k.refresh(0, 0)
	if k.scaledFeedback != feedbackOffset {
		t.Errorf("scaledFeedback = %v, want %v", k.scaledFeedback, float32(feedbackOffset))
	}
	if k.damp1 != 0 || k.damp2 != 1 {
		t.Errorf("damp1,damp2 = %v,%v, want 0,1", k.damp1, k.damp2)
	}
}

func TestClampWet(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1.0, 1.0},
		{2.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.in), func(t *testing.T) {
			l, r := clampWet(tt.in, tt.in)
			if l != tt.want || r != tt.want {
				t.Errorf("clampWet(%v) = %v,%v, want %v", tt.in, l, r, tt.want)
			}
		})
	}
}
