// Package modwave turns bit sequences into AM, FM and PM waveforms.
//
// Each bit governs one cycle of the base carrier sin(2πt). The amplitude
// channel rides the carrier at half or full level, the frequency channel
// doubles the carrier for a one bit, and the phase channel inverts the
// carrier whenever the running zero-parity of the code flips.
//
// Generation dispatches to a fill-cycle kernel selected once per process:
// a vectorized kernel built on algo-vecmath block operations where the CPU
// supports it, and a scalar pure Go fallback otherwise. Both produce
// numerically equivalent output.
package modwave

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-modwave/dsp/bitcode"
	"github.com/cwbudde/algo-modwave/dsp/modwave/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// DefaultSteps is the default waveform resolution in samples per bit cycle.
const DefaultSteps = 200

// Errors returned by waveform generation. ErrEmptyCode and ErrInvalidSteps
// both match ErrInvalidArgument under errors.Is.
var (
	ErrInvalidArgument = errors.New("modwave: invalid argument")
	ErrEmptyCode       = fmt.Errorf("%w: code is empty", ErrInvalidArgument)
	ErrInvalidSteps    = fmt.Errorf("%w: steps must be >= 1", ErrInvalidArgument)
)

// WaveformSet holds one generation result. All four slices have length
// Code.Len() * Steps and are freshly allocated per call; the caller owns them.
type WaveformSet struct {
	Code  bitcode.Sequence
	Steps int

	T  []float64 // time in units of bit cycles, T[j] = j/Steps
	AM []float64 // amplitude modulation, in [-1, 1]
	FM []float64 // frequency modulation, in [-1, 1]
	PM []float64 // phase modulation, in [-1, 1]
}

// Generator produces waveform sets from a shared configuration.
type Generator struct {
	steps int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSteps sets the resolution in samples per bit cycle.
func WithSteps(steps int) Option {
	return func(g *Generator) {
		if steps > 0 {
			g.steps = steps
		}
	}
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{steps: DefaultSteps}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Steps returns the configured resolution.
func (g *Generator) Steps() int {
	return g.steps
}

// Generate computes the waveform set for code at the configured resolution.
func (g *Generator) Generate(code bitcode.Sequence) (*WaveformSet, error) {
	return g.GenerateSteps(code, g.steps)
}

// GenerateSteps computes the waveform set for code at an explicit resolution,
// overriding the configured one for this call.
func (g *Generator) GenerateSteps(code bitcode.Sequence, steps int) (*WaveformSet, error) {
	if code.Len() == 0 {
		return nil, ErrEmptyCode
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	fillCycleInitOnce.Do(initFillCycleKernel)

	n := code.Len()
	total := n * steps

	ws := &WaveformSet{
		Code:  code,
		Steps: steps,
		T:     make([]float64, total),
		AM:    make([]float64, total),
		FM:    make([]float64, total),
		PM:    make([]float64, total),
	}

	for j := range ws.T {
		ws.T[j] = float64(j) / float64(steps)
	}

	// Base carrier tables, sampled once and reused for every cycle.
	sinT := make([]float64, steps)
	sin2T := make([]float64, steps)
	for k := 0; k < steps; k++ {
		phase := 2 * math.Pi * float64(k) / float64(steps)
		sinT[k] = math.Sin(phase)
		sin2T[k] = math.Sin(2 * phase)
	}

	// phaseShift is the zero-parity accumulator for the PM channel. It is
	// folded across cycles here, exactly once per cycle, so kernels only ever
	// see the resolved sign.
	phaseShift := false
	for i := 0; i < n; i++ {
		bit := code.At(i)
		if i > 0 {
			phaseShift = phaseShift != (bit == 0)
		}

		pmScale := 1.0
		if phaseShift {
			pmScale = -1.0
		}

		lo := i * steps
		hi := lo + steps
		fillCycleImpl(bit, pmScale, sinT, sin2T, ws.AM[lo:hi], ws.FM[lo:hi], ws.PM[lo:hi])
	}

	return ws, nil
}

var (
	fillCycleImpl     registry.FillCycleFn
	fillCycleName     string
	fillCycleInitOnce sync.Once
)

func initFillCycleKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("modwave: no fill-cycle kernel registered (missing generic fallback?)")
	}

	if entry.FillCycle == nil {
		panic("modwave: selected kernel missing FillCycle")
	}

	fillCycleImpl = entry.FillCycle
	fillCycleName = entry.Name
}

// KernelName reports which fill-cycle kernel generation dispatches to.
func KernelName() string {
	fillCycleInitOnce.Do(initFillCycleKernel)
	return fillCycleName
}
