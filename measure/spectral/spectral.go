// Package spectral summarizes the magnitude spectrum of a modulated channel.
//
// The summary is meant as a sanity check on generated waveforms: the dominant
// frequency of a base carrier tiling is 1 cycle⁻¹, and a frequency-modulated
// all-ones code peaks at 2 cycles⁻¹.
package spectral

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Analyze.
var (
	ErrEmptySignal  = errors.New("spectral: signal is empty")
	ErrInvalidSteps = errors.New("spectral: steps must be >= 1")
)

// Summary describes the one-sided magnitude spectrum of a signal sampled at
// steps samples per bit cycle.
type Summary struct {
	FFTSize  int
	BinCount int     // one-sided bins, FFTSize/2 + 1
	Peak     float64 // peak magnitude (linear), DC excluded
	PeakBin  int
	PeakFreq float64 // dominant frequency in cycles⁻¹
}

// Analyze zero-pads signal to the next power of two, computes the forward
// FFT and locates the dominant non-DC spectral peak.
func Analyze(signal []float64, steps int) (Summary, error) {
	if len(signal) == 0 {
		return Summary{}, ErrEmptySignal
	}
	if steps < 1 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	fftSize := nextPowerOf2(len(signal))

	inData := make([]complex128, fftSize)
	for i, v := range signal {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Summary{}, fmt.Errorf("spectral: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Summary{}, fmt.Errorf("spectral: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	s := Summary{FFTSize: fftSize, BinCount: bins}
	if bins < 2 {
		return s, nil
	}

	// DC carries no modulation information; start at bin 1.
	peakBin := 1
	for b := 2; b < bins; b++ {
		if mag[b] > mag[peakBin] {
			peakBin = b
		}
	}

	s.Peak = mag[peakBin]
	s.PeakBin = peakBin
	s.PeakFreq = float64(peakBin) * float64(steps) / float64(fftSize)

	return s, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
