// Command modwave turns symbolic codes into AM/FM/PM waveform charts and
// data tables.
//
// Usage:
//
//	modwave [flags]
//
// The input code is interpreted as binary; prefix it with a_ for 7-bit ASCII
// or d_ for per-digit 4-bit BCD.
//
// Examples:
//
//	modwave -store-plot 1011
//	modwave -store-wave a_Hi -steps 400
//	modwave -stats
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-modwave/chart"
	"github.com/cwbudde/algo-modwave/dsp/bitcode"
	"github.com/cwbudde/algo-modwave/dsp/modwave"
	"github.com/cwbudde/algo-modwave/measure/spectral"
	"github.com/cwbudde/algo-modwave/wavefile"
)

func main() {
	steps := flag.Int("steps", modwave.DefaultSteps, "samples per bit cycle")
	noGUI := flag.Bool("no-gui", false, "prefer the plain terminal prompt (the prompt is the only front end)")
	storePlot := flag.String("store-plot", "", "render the waveform chart for `INPUT` to wave_INPUT.png")
	storeWave := flag.String("store-wave", "", "write the waveform table for `INPUT` to wave_INPUT.txt")
	stats := flag.Bool("stats", false, "print a spectral summary per channel")
	flag.Parse()

	if *storePlot != "" && *storeWave != "" {
		fmt.Fprintln(os.Stderr, "modwave: decide for either plotting or storing the waveform")
		os.Exit(2)
	}

	gen := modwave.NewGenerator(modwave.WithSteps(*steps))

	var err error
	switch {
	case *storePlot != "":
		err = storeChart(gen, *storePlot, *stats)
	case *storeWave != "":
		err = storeTable(gen, *storeWave, *stats)
	default:
		_ = *noGUI // accepted selector; there is no graphical front end to prefer
		err = runPrompt(gen, *stats)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "modwave: %v\n", err)
		os.Exit(1)
	}
}

func storeChart(gen *modwave.Generator, input string, stats bool) error {
	ws, err := generate(gen, input)
	if err != nil {
		return err
	}

	filename := "wave_" + input + ".png"
	if err := chart.Save(ws, filename); err != nil {
		return err
	}

	fmt.Printf("Saved chart to %s.\n", filename)
	if stats {
		printStats(ws)
	}
	return nil
}

func storeTable(gen *modwave.Generator, input string, stats bool) error {
	ws, err := generate(gen, input)
	if err != nil {
		return err
	}

	filename := "wave_" + input + ".txt"
	if err := wavefile.Save(ws, filename); err != nil {
		return err
	}

	fmt.Printf("Saved waveform data to %s.\n", filename)
	if stats {
		printStats(ws)
	}
	return nil
}

func generate(gen *modwave.Generator, input string) (*modwave.WaveformSet, error) {
	code, scheme, err := bitcode.Parse(input)
	if err != nil {
		return nil, err
	}

	ws, err := gen.Generate(code)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Evaluated %s as %s: %s (%d bit, %d samples)\n",
		input, scheme, code, code.Len(), len(ws.T))

	return ws, nil
}

func runPrompt(gen *modwave.Generator, stats bool) error {
	fmt.Println("AM FM PM Modulation Calculator")
	fmt.Println("Insert the code and press <Return>; end with <Ctrl>+D.")
	fmt.Println("If the code is not binary, prefix it:")
	fmt.Println("  a_: 7-bit ASCII conversion")
	fmt.Println("  d_: 4-bit BCD conversion")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Code: ")
		if !scanner.Scan() {
			fmt.Println()
			fmt.Println("Leaving.")
			return scanner.Err()
		}

		input := scanner.Text()
		if input == "" {
			continue
		}

		ws, err := generate(gen, input)
		if err != nil {
			fmt.Println(err)
			continue
		}

		filename := "wave_" + input + ".png"
		if err := chart.Save(ws, filename); err != nil {
			fmt.Println(err)
			continue
		}

		fmt.Printf("Saved chart to %s.\n", filename)
		if stats {
			printStats(ws)
		}
	}
}

func printStats(ws *modwave.WaveformSet) {
	channels := []struct {
		name string
		data []float64
	}{
		{"AM", ws.AM},
		{"FM", ws.FM},
		{"PM", ws.PM},
	}

	for _, ch := range channels {
		s, err := spectral.Analyze(ch.data, ws.Steps)
		if err != nil {
			fmt.Printf("%s: %v\n", ch.name, err)
			continue
		}
		fmt.Printf("%s: dominant frequency %.3f cycles^-1 (bin %d of %d, fft %d)\n",
			ch.name, s.PeakFreq, s.PeakBin, s.BinCount, s.FFTSize)
	}
}
