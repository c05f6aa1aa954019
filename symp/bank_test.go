package symp

import (
	"fmt"
	"testing"
)

func TestDelayLengthMatchesTuning(t *testing.T) {
	tests := []struct {
		sampleRate int
		freq       float32
		wantLen    int
	}{
		{48000, 440, 109},
		{48000, 262, 183},
		{48000, 494, 97},
		{44100, 440, 100},
		{48000, 24000, 2},
		{48000, 48000, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dHz_at_%d", int(tt.freq), tt.sampleRate), func(t *testing.T) {
			var b Bank
			if err := b.Allocate([]float32{tt.freq}, tt.sampleRate); err != nil {
				t.Fatalf("Allocate: %v", err)
			}
			lengths := b.DelayLengths()
			if len(lengths) != 1 {
				t.Fatalf("expected 1 comb, got %d", len(lengths))
			}
			if lengths[0] != tt.wantLen {
				t.Errorf("delay length = %d, want %d", lengths[0], tt.wantLen)
			}
		})
	}
}

func TestActiveCountMatchesPositiveTunings(t *testing.T) {
	var b Bank
	tunings := []float32{262, 0, 330, -5, 440, 0, 0}
	if err := b.Allocate(tunings, 48000); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if got := b.Len(); got != 3 {
		t.Errorf("active combs = %d, want 3", got)
	}
}

func TestTuningAboveSampleRateDisablesString(t *testing.T) {
	var b Bank
	if err := b.Allocate([]float32{440, 96000}, 48000); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if got := b.Len(); got != 1 {
		t.Errorf("active combs = %d, want 1 (96 kHz string at 48 kHz must stay silent)", got)
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	var b Bank
	if err := b.Allocate([]float32{440}, 48000); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	b.Free()
	if b.Len() != 0 {
		t.Fatalf("bank not empty after Free")
	}
	b.Free()
	if b.Len() != 0 {
		t.Fatalf("bank not empty after second Free")
	}
}

func TestAllocateRejectsBadInput(t *testing.T) {
	var b Bank
	if err := b.Allocate([]float32{440}, 0); err == nil {
		t.Errorf("expected error for zero sample rate")
	}
	tooMany := make([]float32, CombCount+1)
	if err := b.Allocate(tooMany, 48000); err == nil {
		t.Errorf("expected error for %d tunings", len(tooMany))
	}
	if b.Len() != 0 {
		t.Errorf("failed Allocate left %d combs behind", b.Len())
	}
}
