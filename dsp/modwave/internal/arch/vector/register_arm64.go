//go:build arm64 && !purego

package vector

import (
	"github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vector",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  10,
		FillCycle: fillCycle,
	})
}
