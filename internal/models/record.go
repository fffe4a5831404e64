package models

// TrendYears are the three consecutive years covered by the per-country
// trend view and the year-specific CSV columns.
var TrendYears = []int{2022, 2023, 2024}

// Record represents one country's row of trade statistics after cleaning.
// All monetary values are in thousands of US dollars. Every numeric field
// is finite once a Record leaves the loader; Balance may be negative.
type Record struct {
	Rank    int     `json:"rank"`
	Country string  `json:"country"`
	Imports float64 `json:"imports"`
	Exports float64 `json:"exports"`
	Balance float64 `json:"balance"`

	Imports2022 float64 `json:"imports2022"`
	Exports2022 float64 `json:"exports2022"`
	Imports2023 float64 `json:"imports2023"`
	Exports2023 float64 `json:"exports2023"`
	Imports2024 float64 `json:"imports2024"`
	Exports2024 float64 `json:"exports2024"`
}

// ImportsIn returns the import value for one of the trend years, or zero
// for a year outside the covered range.
func (r Record) ImportsIn(year int) float64 {
	switch year {
	case 2022:
		return r.Imports2022
	case 2023:
		return r.Imports2023
	case 2024:
		return r.Imports2024
	}
	return 0
}

// ExportsIn returns the export value for one of the trend years, or zero
// for a year outside the covered range.
func (r Record) ExportsIn(year int) float64 {
	switch year {
	case 2022:
		return r.Exports2022
	case 2023:
		return r.Exports2023
	case 2024:
		return r.Exports2024
	}
	return 0
}

// HasTrendData reports whether at least one of the year-specific fields
// is non-zero. The trend view shows a placeholder when this is false.
func (r Record) HasTrendData() bool {
	for _, year := range TrendYears {
		if r.ImportsIn(year) != 0 || r.ExportsIn(year) != 0 {
			return true
		}
	}
	return false
}
