package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midigurdy/mg-effects/analysis"
	"github.com/midigurdy/mg-effects/internal/wavio"
	"github.com/midigurdy/mg-effects/symp"
)

// Renders the engine's impulse response and reports the measured resonance
// peak of every active string next to its tuning.
func main() {
	tunings := flag.String("tunings", "", "Comma-separated string tunings in Hz (default: engine defaults)")
	feedback := flag.Float64("feedback", 0.5, "Feedback amount [0,1]")
	damping := flag.Float64("damping", 0.0, "Damping amount [0,1]")
	sampleRate := flag.Int("sample-rate", 48000, "Sample rate in Hz")
	duration := flag.Float64("duration", 4.0, "Impulse response length in seconds")
	fftSize := flag.Int("fft-size", 8192, "FFT size for peak measurement")
	output := flag.String("output", "", "Optional WAV path for the impulse response")
	flag.Parse()

	controls := symp.NewDefaultControls()
	controls.Feedback = float32(*feedback)
	controls.Damping = float32(*damping)
	controls.InputGain = 1.0
	if *tunings != "" {
		vals, err := parseHzList(*tunings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		controls.Tunings = [symp.CombCount]float32{}
		copy(controls.Tunings[:], vals)
	}

	engine, err := symp.New(*sampleRate, controls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := engine.Activate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error activating engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Deactivate()

	frames := int(*duration * float64(*sampleRate))
	if frames < *fftSize {
		frames = *fftSize
	}

	const blockSize = 128
	in := make([]float32, blockSize)
	outL := make([]float32, blockSize)
	outR := make([]float32, blockSize)
	response := make([]float64, 0, frames)
	mono := make([]float32, 0, frames)

	first := true
	for rendered := 0; rendered < frames; rendered += blockSize {
		n := blockSize
		if rendered+n > frames {
			n = frames - rendered
		}
		for i := range in[:n] {
			in[i] = 0
		}
		if first {
			in[0] = 1.0
			first = false
		}
		engine.ProcessReplace(in[:n], outL[:n], outR[:n])
		for i := 0; i < n; i++ {
			response = append(response, float64(outL[i]))
			mono = append(mono, outL[i])
		}
	}

	mags, err := analysis.Spectrum(response, *fftSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Impulse response: %d frames at %d Hz, %d active strings\n",
		frames, *sampleRate, engine.ActiveStrings())
	for i, freq := range controls.Tunings {
		if freq <= 0 {
			continue
		}
		span := float64(freq) * 0.05
		if span < 8 {
			span = 8
		}
		peak := analysis.PeakNear(mags, *sampleRate, float64(freq), span)
		fmt.Printf("  string %2d: tuned %7.1f Hz, peak %7.1f Hz\n", i+1, freq, peak)
	}

	if *output != "" {
		if err := wavio.WriteMono(*output, mono, *sampleRate); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *output)
	}
}

func parseHzList(s string) ([]float32, error) {
	var vals []float32
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 32)
		if err != nil {
			return nil, fmt.Errorf("tuning %q: %w", tok, err)
		}
		vals = append(vals, float32(v))
	}
	if len(vals) > symp.CombCount {
		return nil, fmt.Errorf("at most %d strings, got %d", symp.CombCount, len(vals))
	}
	return vals, nil
}
