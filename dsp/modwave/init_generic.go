//go:build purego || !(amd64 || arm64)

package modwave

import (
	_ "github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/generic"  // register generic kernel
	_ "github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/registry" // initialize kernel registry
)
