// Package generic provides the pure Go scalar fill-cycle kernel.
package generic

import (
	"github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		FillCycle: fillCycle,
	})
}

// fillCycle computes one cycle sample by sample. The bit value selects the
// amplitude level (AM) and the carrier table (FM); pmScale carries the
// already-resolved phase parity sign (PM).
func fillCycle(bit int, pmScale float64, sinT, sin2T, am, fm, pm []float64) {
	level := (float64(bit) + 1) / 2

	carrier := sinT
	if bit != 0 {
		carrier = sin2T
	}

	for k := range sinT {
		am[k] = level * sinT[k]
		fm[k] = carrier[k]
		pm[k] = pmScale * sinT[k]
	}
}
