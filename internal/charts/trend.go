package charts

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"tradedash.openmarkets.org/internal/models"
)

// Trend renders one country's import and export values across the three
// covered years. When the country has no yearly data at all, an
// informational placeholder is drawn instead.
func Trend(data models.TrendData) ([]byte, error) {
	hasData := false
	for _, pt := range data.Points {
		if pt.Imports != 0 || pt.Exports != 0 {
			hasData = true
			break
		}
	}
	if !hasData {
		return Placeholder(fmt.Sprintf("%s - 3 Year Trend", data.Country),
			"No yearly data available for this country")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - 3 Year Trend", data.Country)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Value (K$)"

	importPoints := make(plotter.XYs, len(data.Points))
	exportPoints := make(plotter.XYs, len(data.Points))
	yearLabels := make([]string, len(data.Points))
	for i, pt := range data.Points {
		importPoints[i] = plotter.XY{X: float64(i), Y: pt.Imports}
		exportPoints[i] = plotter.XY{X: float64(i), Y: pt.Exports}
		yearLabels[i] = fmt.Sprintf("%d", pt.Year)
	}

	importLine, err := plotter.NewLine(importPoints)
	if err != nil {
		return nil, err
	}
	importLine.Color = paletteColor(0)
	importLine.Width = vg.Points(2)

	exportLine, err := plotter.NewLine(exportPoints)
	if err != nil {
		return nil, err
	}
	exportLine.Color = paletteColor(1)
	exportLine.Width = vg.Points(2)
	exportLine.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}

	importMarkers, err := plotter.NewScatter(importPoints)
	if err != nil {
		return nil, err
	}
	importMarkers.GlyphStyle.Color = paletteColor(0)
	importMarkers.GlyphStyle.Radius = vg.Points(3)
	importMarkers.GlyphStyle.Shape = draw.CircleGlyph{}

	exportMarkers, err := plotter.NewScatter(exportPoints)
	if err != nil {
		return nil, err
	}
	exportMarkers.GlyphStyle.Color = paletteColor(1)
	exportMarkers.GlyphStyle.Radius = vg.Points(3)
	exportMarkers.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(importLine, importMarkers, exportLine, exportMarkers)
	p.Legend.Add("Imports", importLine)
	p.Legend.Add("Exports", exportLine)
	p.Legend.Top = true

	p.Add(plotter.NewGrid())
	p.NominalX(yearLabels...)

	return renderPNG(p, 10*vg.Inch, 5*vg.Inch)
}
