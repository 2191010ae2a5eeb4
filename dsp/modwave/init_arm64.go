//go:build arm64 && !purego

package modwave

import (
	_ "github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/generic"  // register generic kernel
	_ "github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/registry" // initialize kernel registry
	_ "github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/vector"   // register vector kernel
)
