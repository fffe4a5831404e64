package charts

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tradedash.openmarkets.org/internal/models"
)

// Comparison renders grouped import/export bars per country. Records are
// drawn in the order given; the caller supplies them already sorted
// descending by the user's chosen column.
func Comparison(records []models.Record) ([]byte, error) {
	if len(records) == 0 {
		return Placeholder("Import and Export Volume by Country",
			"No countries in the selected rank range")
	}

	p := plot.New()
	p.Title.Text = "Import and Export Volume by Country"
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Value (K$)"

	imports := make(plotter.Values, len(records))
	exports := make(plotter.Values, len(records))
	countries := make([]string, len(records))
	for i, rec := range records {
		imports[i] = rec.Imports
		exports[i] = rec.Exports
		countries[i] = rec.Country
	}

	barWidth := vg.Points(12)

	importBars, err := plotter.NewBarChart(imports, barWidth)
	if err != nil {
		return nil, err
	}
	importBars.Color = paletteColor(0)
	importBars.LineStyle.Width = vg.Length(0)
	importBars.Offset = -barWidth / 2

	exportBars, err := plotter.NewBarChart(exports, barWidth)
	if err != nil {
		return nil, err
	}
	exportBars.Color = paletteColor(1)
	exportBars.LineStyle.Width = vg.Length(0)
	exportBars.Offset = barWidth / 2

	p.Add(importBars, exportBars)
	p.Legend.Add("Imports", importBars)
	p.Legend.Add("Exports", exportBars)
	p.Legend.Top = true

	p.NominalX(countries...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return renderPNG(p, 12*vg.Inch, 6*vg.Inch)
}
