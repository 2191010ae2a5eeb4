// Package wavefile writes waveform sets as whitespace-delimited text tables.
//
// The format is one header comment line, one row per sample with four signed
// fixed-point fields (t, AM, FM, PM), and one trailing attribution comment:
//
//	# t [cycle] AM          FM          PM
//	+0.00000000 +0.00000000 +0.00000000 +0.00000000
//	...
//	# Created with algo-modwave
package wavefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-modwave/dsp/modwave"
)

// Errors returned by the writer.
var (
	ErrEmptySet       = errors.New("wavefile: waveform set is nil or empty")
	ErrInvalidTarget  = errors.New("wavefile: invalid target")
	ErrLengthMismatch = errors.New("wavefile: waveform arrays differ in length")
)

const (
	header = "# t [cycle] AM          FM          PM"
	footer = "# Created with algo-modwave"
)

// Write writes the waveform table for ws to w.
func Write(w io.Writer, ws *modwave.WaveformSet) error {
	if ws == nil || len(ws.T) == 0 {
		return ErrEmptySet
	}
	if len(ws.AM) != len(ws.T) || len(ws.FM) != len(ws.T) || len(ws.PM) != len(ws.T) {
		return ErrLengthMismatch
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, header)
	for j := range ws.T {
		fmt.Fprintf(bw, "%+9.8f %+9.8f %+9.8f %+9.8f\n", ws.T[j], ws.AM[j], ws.FM[j], ws.PM[j])
	}
	fmt.Fprintln(bw, footer)

	return bw.Flush()
}

// Save writes the waveform table for ws to a new file.
func Save(ws *modwave.WaveformSet, filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: empty filename", ErrInvalidTarget)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("wavefile: create %s: %w", filename, err)
	}

	if err := Write(f, ws); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
