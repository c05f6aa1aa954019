package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/midigurdy/mg-effects/analysis"
	"github.com/midigurdy/mg-effects/internal/wavio"
	"github.com/midigurdy/mg-effects/symp"
)

// Fits string tunings, feedback and damping so the effect's response to an
// excitation matches a reference recording.
func main() {
	reference := flag.String("reference", "", "Reference WAV to match")
	excitation := flag.String("excitation", "", "Excitation WAV driving the effect (default: unit impulse)")
	sampleRate := flag.Int("sample-rate", 48000, "Working sample rate in Hz")
	numStrings := flag.Int("strings", 4, "Number of strings to fit (1-11)")
	minHz := flag.Float64("min-hz", 80.0, "Lower tuning bound in Hz")
	maxHz := flag.Float64("max-hz", 1600.0, "Upper tuning bound in Hz")
	pop := flag.Int("pop", 24, "Mayfly population size")
	iters := flag.Int("iters", 40, "Mayfly iterations")
	seed := flag.Int64("seed", 1, "Random seed")
	variant := flag.String("variant", "ma", "Mayfly variant: ma, desma, olce, eobbma, gsasma, mpma, aoblmoa")
	output := flag.String("output", "", "Optional WAV path for the best rendition")
	flag.Parse()

	if *reference == "" {
		fmt.Fprintln(os.Stderr, "missing -reference")
		os.Exit(1)
	}
	if *numStrings < 1 || *numStrings > symp.CombCount {
		fmt.Fprintf(os.Stderr, "strings must be 1-%d\n", symp.CombCount)
		os.Exit(1)
	}
	if *minHz <= 0 || *maxHz <= *minHz {
		fmt.Fprintln(os.Stderr, "invalid tuning bounds")
		os.Exit(1)
	}

	sr := *sampleRate
	ref, err := loadMono64(*reference, sr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reference: %v\n", err)
		os.Exit(1)
	}
	maxFrames := sr * 12
	if len(ref) > maxFrames {
		ref = ref[:maxFrames]
	}

	drive := make([]float32, len(ref))
	if *excitation != "" {
		exc, err := loadMono32(*excitation, sr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "excitation: %v\n", err)
			os.Exit(1)
		}
		copy(drive, exc)
	} else {
		drive[0] = 1.0
	}

	dom := domain{strings: *numStrings, minHz: *minHz, maxHz: *maxHz}
	dims := dom.strings + 2

	fmt.Printf("Fitting %d strings + feedback + damping against %q (%d frames @ %d Hz)...\n",
		dom.strings, *reference, len(ref), sr)

	cfg, err := newMayflyConfig(*variant, *pop, dims, *iters)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Rand = rand.New(rand.NewSource(*seed))

	evals := 0
	bestScore := math.Inf(1)
	var best *symp.Controls
	cfg.ObjectiveFunc = func(pos []float64) float64 {
		evals++
		controls := dom.controlsAt(pos)
		cand, err := render(controls, sr, drive)
		if err != nil {
			return 1.0
		}
		m := analysis.Compare(ref, cand, sr)
		if m.Score < bestScore {
			bestScore = m.Score
			best = controls
			fmt.Printf("Improved eval=%d score=%.4f sim=%.2f%% feedback=%.3f damping=%.3f tunings=%s\n",
				evals, m.Score, m.Similarity*100.0, controls.Feedback, controls.Damping,
				formatTunings(controls, dom.strings))
		}
		return m.Score
	}

	if _, err := runMayfly(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "optimization failed: %v\n", err)
		os.Exit(1)
	}
	if best == nil {
		fmt.Fprintln(os.Stderr, "no candidate evaluated")
		os.Exit(1)
	}

	fmt.Printf("Best after %d evals: score=%.4f feedback=%.3f damping=%.3f tunings=%s\n",
		evals, bestScore, best.Feedback, best.Damping, formatTunings(best, dom.strings))

	if *output != "" {
		cand, err := render(best, sr, drive)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		mono := make([]float32, len(cand))
		for i, v := range cand {
			mono[i] = float32(v)
		}
		if err := wavio.WriteMono(*output, mono, sr); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *output, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *output)
	}
}

// render drives a fresh engine with the excitation and returns the left
// wet channel.
func render(controls *symp.Controls, sampleRate int, drive []float32) ([]float64, error) {
	engine, err := symp.New(sampleRate, controls)
	if err != nil {
		return nil, err
	}
	if err := engine.Activate(); err != nil {
		return nil, err
	}
	defer engine.Deactivate()

	const blockSize = 128
	outL := make([]float32, blockSize)
	outR := make([]float32, blockSize)
	out := make([]float64, 0, len(drive))
	for pos := 0; pos < len(drive); pos += blockSize {
		n := blockSize
		if pos+n > len(drive) {
			n = len(drive) - pos
		}
		engine.ProcessReplace(drive[pos:pos+n], outL[:n], outR[:n])
		for i := 0; i < n; i++ {
			out = append(out, float64(outL[i]))
		}
	}
	return out, nil
}

func loadMono64(path string, sampleRate int) ([]float64, error) {
	x, err := loadMono32(path, sampleRate)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out, nil
}

func loadMono32(path string, sampleRate int) ([]float32, error) {
	x, rate, err := wavio.ReadMono(path)
	if err != nil {
		return nil, err
	}
	return wavio.ResampleIfNeeded(x, rate, sampleRate)
}

func formatTunings(c *symp.Controls, n int) string {
	s := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.1f", c.Tunings[i])
	}
	return s + "]"
}
