package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/midigurdy/mg-effects/symp"
)

// applyTunings overwrites the control tunings from either a Hz list or a
// MIDI note list. An empty spec keeps the defaults.
func applyTunings(c *symp.Controls, tunings string, notes string) error {
	if tunings != "" && notes != "" {
		return fmt.Errorf("use either -tunings or -notes, not both")
	}
	if tunings == "" && notes == "" {
		return nil
	}

	var vals []float32
	if tunings != "" {
		for _, tok := range strings.Split(tunings, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 32)
			if err != nil {
				return fmt.Errorf("tuning %q: %w", tok, err)
			}
			vals = append(vals, float32(v))
		}
	} else {
		for _, tok := range strings.Split(notes, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return fmt.Errorf("note %q: %w", tok, err)
			}
			vals = append(vals, symp.TuningForNote(n))
		}
	}
	if len(vals) > symp.CombCount {
		return fmt.Errorf("at most %d strings, got %d", symp.CombCount, len(vals))
	}

	c.Tunings = [symp.CombCount]float32{}
	copy(c.Tunings[:], vals)
	return nil
}
