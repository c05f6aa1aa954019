package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midigurdy/mg-effects/internal/wavio"
	"github.com/midigurdy/mg-effects/symp"
)

func main() {
	input := flag.String("input", "", "Input WAV file (downmixed to mono)")
	output := flag.String("output", "output.wav", "Output WAV file path")
	tunings := flag.String("tunings", "", "Comma-separated string tunings in Hz (max 11, 0 disables)")
	notes := flag.String("notes", "", "Comma-separated MIDI notes as an alternative to -tunings")
	feedback := flag.Float64("feedback", 0.5, "Feedback amount [0,1]")
	damping := flag.Float64("damping", 0.0, "Damping amount [0,1]")
	inputGain := flag.Float64("input-gain", symp.DefaultInputGain, "Input gain")
	wetLeft := flag.Float64("wet-left", 1.0, "Wet gain left [0,1]")
	wetRight := flag.Float64("wet-right", 1.0, "Wet gain right [0,1]")
	sampleRate := flag.Int("sample-rate", 0, "Render sample rate in Hz (0 = input file rate)")
	tail := flag.Float64("tail", 2.0, "Ring-out tail in seconds appended after the input")
	blockSize := flag.Int("block-size", 128, "Processing block size in samples")
	add := flag.Bool("add", false, "Additive mode: mix the wet signal onto the dry input")
	addingGain := flag.Float64("adding-gain", 1.0, "Wet contribution gain in additive mode")
	bpCenter := flag.Float64("bp-center", 0.0, "Input band-pass center in Hz (0 = off)")
	bpQ := flag.Float64("bp-q", 0.707, "Input band-pass Q")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "missing -input")
		os.Exit(1)
	}

	mono, fileRate, err := wavio.ReadMono(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", *input, err)
		os.Exit(1)
	}
	sr := *sampleRate
	if sr <= 0 {
		sr = fileRate
	}
	mono, err = wavio.ResampleIfNeeded(mono, fileRate, sr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resampling: %v\n", err)
		os.Exit(1)
	}

	controls := symp.NewDefaultControls()
	controls.Feedback = float32(*feedback)
	controls.Damping = float32(*damping)
	controls.InputGain = float32(*inputGain)
	controls.WetLeft = float32(*wetLeft)
	controls.WetRight = float32(*wetRight)
	if err := applyTunings(controls, *tunings, *notes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	engine, err := symp.New(sr, controls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *bpCenter > 0 {
		if err := engine.SetBandpass(*bpCenter, *bpQ); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := engine.Activate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error activating engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Deactivate()

	tailFrames := int(*tail * float64(sr))
	if tailFrames < 0 {
		tailFrames = 0
	}
	totalFrames := len(mono) + tailFrames

	fmt.Printf("Rendering %d frames at %d Hz through %d strings (delays: %v)...\n",
		totalFrames, sr, engine.ActiveStrings(), engine.DelayLengths())

	bs := *blockSize
	if bs < 1 {
		bs = 128
	}
	in := make([]float32, bs)
	outL := make([]float32, bs)
	outR := make([]float32, bs)
	left := make([]float32, 0, totalFrames)
	right := make([]float32, 0, totalFrames)

	for rendered := 0; rendered < totalFrames; rendered += bs {
		n := bs
		if rendered+n > totalFrames {
			n = totalFrames - rendered
		}
		for i := 0; i < n; i++ {
			if rendered+i < len(mono) {
				in[i] = mono[rendered+i]
			} else {
				in[i] = 0
			}
		}
		if *add {
			// Dry input on both channels, wet accumulated on top.
			copy(outL[:n], in[:n])
			copy(outR[:n], in[:n])
			engine.ProcessAdding(in[:n], outL[:n], outR[:n], float32(*addingGain))
		} else {
			engine.ProcessReplace(in[:n], outL[:n], outR[:n])
		}
		left = append(left, outL[:n]...)
		right = append(right, outR[:n]...)
	}

	if err := wavio.WriteStereo(*output, left, right, sr); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully wrote %s (%d frames)\n", *output, totalFrames)
}
