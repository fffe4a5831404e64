package charts

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tradedash.openmarkets.org/internal/models"
)

// Correlation renders the market size matrix: imports against exports on
// log-log axes, one bubble per country, radius scaled by import value.
// Log scale is undefined at zero, so records with a zero on either axis
// are excluded from the plot.
func Correlation(records []models.Record) ([]byte, error) {
	var plottable []models.Record
	maxImports := 0.0
	for _, rec := range records {
		if rec.Imports > 0 && rec.Exports > 0 {
			plottable = append(plottable, rec)
			if rec.Imports > maxImports {
				maxImports = rec.Imports
			}
		}
	}

	if len(plottable) == 0 {
		return Placeholder("Market Size Matrix",
			"No countries with non-zero trade volume in the selected range")
	}

	p := plot.New()
	p.Title.Text = "Market Size Matrix"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Imports (K$)"
	p.Y.Label.Text = "Exports (K$)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	points := make(plotter.XYs, len(plottable))
	labels := make([]string, len(plottable))

	for i, rec := range plottable {
		points[i].X = rec.Imports
		points[i].Y = rec.Exports
		labels[i] = rec.Country

		bubble, err := plotter.NewScatter(plotter.XYs{points[i]})
		if err != nil {
			return nil, err
		}
		bubble.GlyphStyle.Color = paletteColor(i)
		bubble.GlyphStyle.Radius = bubbleRadius(rec.Imports, maxImports)
		bubble.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bubble)
	}

	labelPoints, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    points,
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}
	p.Add(labelPoints)

	p.Add(plotter.NewGrid())

	return renderPNG(p, 8*vg.Inch, 8*vg.Inch)
}

// bubbleRadius maps a country's import value to a glyph radius between 3
// and 12 points, proportional to its share of the largest import value.
func bubbleRadius(imports, maxImports float64) vg.Length {
	if maxImports <= 0 {
		return vg.Points(3)
	}
	return vg.Points(3 + 9*(imports/maxImports))
}
