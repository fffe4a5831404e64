// Package charts renders the dashboard's three view panels as PNG images
// using gonum/plot. Every renderer guards its degenerate case (empty
// filtered set, zeros on a log axis, missing yearly data) by drawing an
// informational placeholder panel instead of failing.
package charts

import (
	"bytes"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var palette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},
	{R: 34, G: 139, B: 34, A: 255},
	{R: 178, G: 34, B: 34, A: 255},
	{R: 218, G: 165, B: 32, A: 255},
	{R: 72, G: 61, B: 139, A: 255},
	{R: 0, G: 139, B: 139, A: 255},
	{R: 205, G: 92, B: 92, A: 255},
	{R: 85, G: 107, B: 47, A: 255},
	{R: 199, G: 21, B: 133, A: 255},
	{R: 105, G: 105, B: 105, A: 255},
}

func paletteColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

func renderPNG(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	writerTo, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writerTo.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Placeholder renders an informational panel carrying a single message,
// used whenever a view has nothing to draw.
func Placeholder(title, message string) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.HideAxes()

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.35, Y: 0.5}},
		Labels: []string{message},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	return renderPNG(p, 10*vg.Inch, 5*vg.Inch)
}
