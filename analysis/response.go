// Package analysis measures the spectral behavior of rendered audio:
// magnitude spectra, resonance peaks and reference comparison.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// Spectrum computes an averaged Hann-windowed magnitude spectrum of x with
// the given FFT size and 50% hop. The result holds fftSize/2 bins; bin k
// covers frequency k*sampleRate/fftSize.
func Spectrum(x []float64, fftSize int) ([]float64, error) {
	if fftSize < 4 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("fft size must be a power of two >= 4: %d", fftSize)
	}
	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return nil, err
	}

	hann := make([]float64, fftSize)
	for i := range hann {
		hann[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
	}

	spec := make([]complex128, fftSize/2+1)
	buf := make([]float64, fftSize)
	mags := make([]float64, fftSize/2)
	hop := fftSize / 2
	frames := 0

	for pos := 0; pos+fftSize <= len(x); pos += hop {
		for i := 0; i < fftSize; i++ {
			buf[i] = x[pos+i] * hann[i]
		}
		plan.Forward(spec, buf)
		for k := 1; k < fftSize/2; k++ {
			mags[k] += cmplx.Abs(spec[k])
		}
		frames++
	}

	if frames == 0 {
		// Input shorter than one frame: zero-pad a single frame.
		for i := range buf {
			buf[i] = 0
		}
		for i := 0; i < len(x); i++ {
			buf[i] = x[i] * hann[i]
		}
		plan.Forward(spec, buf)
		for k := 1; k < fftSize/2; k++ {
			mags[k] = cmplx.Abs(spec[k])
		}
		return mags, nil
	}

	scale := 1.0 / float64(frames)
	for k := range mags {
		mags[k] *= scale
	}
	return mags, nil
}

// PeakNear returns the frequency of the strongest bin within spanHz of
// centerHz in a Spectrum result, or 0 when the band holds no usable bins.
func PeakNear(mags []float64, sampleRate int, centerHz float64, spanHz float64) float64 {
	fftSize := len(mags) * 2
	if fftSize == 0 || sampleRate <= 0 {
		return 0
	}
	binHz := float64(sampleRate) / float64(fftSize)
	minBin := int((centerHz - spanHz) / binHz)
	maxBin := int((centerHz + spanHz) / binHz)
	if minBin < 1 {
		minBin = 1
	}
	if maxBin > len(mags)-1 {
		maxBin = len(mags) - 1
	}
	if minBin > maxBin {
		return 0
	}

	bestBin := 0
	bestMag := 0.0
	for k := minBin; k <= maxBin; k++ {
		if mags[k] > bestMag {
			bestMag = mags[k]
			bestBin = k
		}
	}
	if bestBin == 0 {
		return 0
	}
	return float64(bestBin) * binHz
}
