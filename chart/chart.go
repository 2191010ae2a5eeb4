// Package chart renders waveform sets as four vertically aligned subplots:
// the raw bit values as a step function, then the AM, FM and PM curves, with
// dotted vertical lines at every cycle boundary.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-modwave/dsp/modwave"
)

// Errors returned by the renderer.
var (
	ErrEmptySet      = errors.New("chart: waveform set is nil or empty")
	ErrInvalidTarget = errors.New("chart: invalid target")
)

// Figure dimensions, matching a 2:1 landscape layout.
const (
	figWidth  = 16 * vg.Inch
	figHeight = 8 * vg.Inch
)

var (
	colorData = color.RGBA{B: 180, A: 255}
	colorAM   = color.RGBA{G: 140, A: 255}
	colorFM   = color.RGBA{R: 200, A: 255}
	colorPM   = color.RGBA{R: 0, G: 160, B: 180, A: 255}
)

// Write renders ws and encodes the figure as PNG to w.
func Write(w io.Writer, ws *modwave.WaveformSet) error {
	img, err := render(ws)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("chart: encode png: %w", err)
	}

	return nil
}

// Save renders ws to a PNG file.
func Save(ws *modwave.WaveformSet, filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: empty filename", ErrInvalidTarget)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("chart: create %s: %w", filename, err)
	}

	if err := Write(f, ws); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func render(ws *modwave.WaveformSet) (*vgimg.Canvas, error) {
	if ws == nil || len(ws.T) == 0 || ws.Steps < 1 {
		return nil, ErrEmptySet
	}

	n := ws.Code.Len()

	top, err := dataPlot(ws, n)
	if err != nil {
		return nil, err
	}

	rows := []struct {
		name string
		col  color.RGBA
		data []float64
	}{
		{"AM", colorAM, ws.AM},
		{"FM", colorFM, ws.FM},
		{"PM", colorPM, ws.PM},
	}

	plots := make([][]*plot.Plot, 1, 4)
	plots[0] = []*plot.Plot{top}
	for i, row := range rows {
		p, err := wavePlot(ws, n, row.name, row.col, row.data, i == len(rows)-1)
		if err != nil {
			return nil, err
		}
		plots = append(plots, []*plot.Plot{p})
	}

	img := vgimg.New(figWidth, figHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1}

	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		plots[r][0].Draw(canvases[r][0])
	}

	return img, nil
}

// dataPlot draws the raw bit values as a post-step function.
func dataPlot(ws *modwave.WaveformSet, n int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Modulations of %s", ws.Code)

	xys := make(plotter.XYs, n+1)
	for i := 0; i < n; i++ {
		xys[i].X = float64(i)
		xys[i].Y = float64(ws.Code.At(i))
	}
	// Repeat the last value so the final cycle draws a full step.
	xys[n].X = float64(n)
	xys[n].Y = float64(ws.Code.At(n - 1))

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: data line: %w", err)
	}
	line.StepStyle = plotter.PostStep
	line.LineStyle.Color = colorData

	p.Add(line)
	p.Legend.Add("Data", line)

	styleAxes(p, n, -0.1, 1.1, false)
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0, Label: "0"},
		{Value: 1, Label: "1"},
	})
	addCycleBoundaries(p, n, -0.1, 1.1)

	return p, nil
}

// wavePlot draws one modulation channel.
func wavePlot(ws *modwave.WaveformSet, n int, name string, col color.RGBA, data []float64, bottom bool) (*plot.Plot, error) {
	p := plot.New()

	xys := make(plotter.XYs, len(data))
	for j := range data {
		xys[j].X = ws.T[j]
		xys[j].Y = data[j]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: %s line: %w", name, err)
	}
	line.LineStyle.Color = col

	p.Add(line)
	p.Legend.Add(name, line)

	styleAxes(p, n, -1.1, 1.1, bottom)
	p.Y.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: -1, Label: "-1"},
		{Value: 0, Label: "0"},
		{Value: 1, Label: "1"},
	})
	addCycleBoundaries(p, n, -1.1, 1.1)

	return p, nil
}

// styleAxes fixes the shared x range and hides x ticks everywhere except the
// bottom plot, which gets one integer tick per cycle.
func styleAxes(p *plot.Plot, n int, yMin, yMax float64, bottom bool) {
	p.X.Min, p.X.Max = 0, float64(n)
	p.Y.Min, p.Y.Max = yMin, yMax

	if !bottom {
		p.X.Tick.Marker = plot.ConstantTicks(nil)
		return
	}

	ticks := make([]plot.Tick, n+1)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Label.Text = "Cycle"
}

// addCycleBoundaries draws a dotted vertical line at every cycle boundary.
func addCycleBoundaries(p *plot.Plot, n int, yMin, yMax float64) {
	dotted := draw.LineStyle{
		Color:  color.Gray{Y: 110},
		Width:  vg.Points(0.5),
		Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
	}

	for i := 0; i <= n; i++ {
		line := &plotter.Line{
			XYs: plotter.XYs{
				{X: float64(i), Y: yMin},
				{X: float64(i), Y: yMax},
			},
			LineStyle: dotted,
		}
		p.Add(line)
	}
}
