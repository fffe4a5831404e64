package models

// Summary holds the three KPI aggregates computed over the rank-filtered
// table: total imports, total exports and mean trade balance. Aggregates
// over an empty selection are zero, never NaN.
type Summary struct {
	CountryCount int     `json:"countryCount"`
	TotalImports float64 `json:"totalImports"`
	TotalExports float64 `json:"totalExports"`
	MeanBalance  float64 `json:"meanBalance"`
}

// TrendPoint is one year of a country's import/export trend.
type TrendPoint struct {
	Year    int     `json:"year"`
	Imports float64 `json:"imports"`
	Exports float64 `json:"exports"`
}

// TrendData is the payload for the per-country three-year trend view.
type TrendData struct {
	Country string       `json:"country"`
	Points  []TrendPoint `json:"points"`
}

// NewTrendData projects a record's year-specific fields into the trend
// payload. Years missing from the source are zero-filled by the loader,
// so every point is always present.
func NewTrendData(r Record) TrendData {
	points := make([]TrendPoint, 0, len(TrendYears))
	for _, year := range TrendYears {
		points = append(points, TrendPoint{
			Year:    year,
			Imports: r.ImportsIn(year),
			Exports: r.ExportsIn(year),
		})
	}
	return TrendData{Country: r.Country, Points: points}
}
