// Package registry provides the implementation registry for waveform
// fill-cycle kernels.
//
// Kernel variants (generic scalar, vectorized) register themselves via init()
// functions; the modwave package looks up the highest-priority variant
// supported by the detected CPU features once per process.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// FillCycleFn writes one bit cycle of modulation samples.
//
// bit is the cycle's bit value (0 or 1), pmScale is the resolved phase sign
// for the cycle (+1 or -1), sinT and sin2T are the base and doubled-frequency
// carrier tables, and am, fm, pm are the destination slices for the cycle.
// All five slices have identical length (the steps-per-cycle resolution).
type FillCycleFn func(bit int, pmScale float64, sinT, sin2T, am, fm, pm []float64)

// OpEntry is one registered fill-cycle kernel implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	FillCycle FillCycleFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default fill-cycle kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
