package analysis

import (
	"math"
	"testing"
)

func sine(freq float64, sampleRate int, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

func TestSpectrumPeakOfSine(t *testing.T) {
	const sampleRate = 48000
	const fftSize = 4096
	x := sine(440, sampleRate, sampleRate)

	mags, err := Spectrum(x, fftSize)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if len(mags) != fftSize/2 {
		t.Fatalf("got %d bins, want %d", len(mags), fftSize/2)
	}

	peak := PeakNear(mags, sampleRate, 440, 100)
	binHz := float64(sampleRate) / float64(fftSize)
	if math.Abs(peak-440) > binHz {
		t.Errorf("peak at %.2f Hz, want 440 within one bin (%.2f Hz)", peak, binHz)
	}
}

func TestSpectrumRejectsBadFFTSize(t *testing.T) {
	x := sine(440, 48000, 8192)
	for _, size := range []int{0, 3, 1000} {
		if _, err := Spectrum(x, size); err == nil {
			t.Errorf("Spectrum accepted fft size %d", size)
		}
	}
}

func TestSpectrumHandlesShortInput(t *testing.T) {
	mags, err := Spectrum(sine(1000, 48000, 100), 4096)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if len(mags) != 2048 {
		t.Fatalf("got %d bins, want 2048", len(mags))
	}
}

func TestPeakNearEmptyBand(t *testing.T) {
	mags := make([]float64, 2048)
	if got := PeakNear(mags, 48000, 24500, 5); got != 0 {
		t.Errorf("PeakNear above Nyquist = %v, want 0", got)
	}
}
