package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/mayfly"
	"github.com/midigurdy/mg-effects/symp"
)

// domain maps a normalized [0,1] search position onto engine controls:
// one log-spaced tuning per string, then feedback, then damping.
type domain struct {
	strings int
	minHz   float64
	maxHz   float64
}

func (d domain) controlsAt(pos []float64) *symp.Controls {
	c := symp.NewDefaultControls()
	c.Tunings = [symp.CombCount]float32{}
	ratio := d.maxHz / d.minHz
	for i := 0; i < d.strings && i < len(pos); i++ {
		c.Tunings[i] = float32(d.minHz * math.Pow(ratio, clampUnit(pos[i])))
	}
	if len(pos) > d.strings {
		c.Feedback = float32(clampUnit(pos[d.strings]))
	}
	if len(pos) > d.strings+1 {
		c.Damping = float32(clampUnit(pos[d.strings+1]))
	}
	c.InputGain = 1.0
	return c
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func newMayflyConfig(variant string, pop int, dims int, iters int) (*mayfly.Config, error) {
	var cfg *mayfly.Config
	switch variant {
	case "ma":
		cfg = mayfly.NewDefaultConfig()
	case "desma":
		cfg = mayfly.NewDESMAConfig()
	case "olce":
		cfg = mayfly.NewOLCEConfig()
	case "eobbma":
		cfg = mayfly.NewEOBBMAConfig()
	case "gsasma":
		cfg = mayfly.NewGSASMAConfig()
	case "mpma":
		cfg = mayfly.NewMPMAConfig()
	case "aoblmoa":
		cfg = mayfly.NewAOBLMOAConfig()
	default:
		return nil, fmt.Errorf("unsupported variant %q", variant)
	}
	cfg.ProblemSize = dims
	cfg.LowerBound = 0.0
	cfg.UpperBound = 1.0
	cfg.MaxIterations = iters
	cfg.NPop = pop
	cfg.NPopF = pop
	cfg.NC = 2 * pop
	cfg.NM = maxInt(1, int(math.Round(0.05*float64(pop))))
	return cfg, nil
}

func runMayfly(cfg *mayfly.Config) (_ *mayfly.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mayfly panic: %v", r)
		}
	}()
	return mayfly.Optimize(cfg)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
