// Package vector provides the block-operation fill-cycle kernel built on
// algo-vecmath. Each cycle is written with whole-slice operations instead of
// per-sample loops.
package vector

import (
	"github.com/cwbudde/algo-vecmath"
)

func fillCycle(bit int, pmScale float64, sinT, sin2T, am, fm, pm []float64) {
	vecmath.ScaleBlock(am, sinT, (float64(bit)+1)/2)

	if bit != 0 {
		copy(fm, sin2T)
	} else {
		copy(fm, sinT)
	}

	vecmath.ScaleBlock(pm, sinT, pmScale)
}
