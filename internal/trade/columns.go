package trade

import "tradedash.openmarkets.org/internal/models"

// Expected column headers. Headers are matched after whitespace trimming.
const (
	colRank    = "Rank"
	colCountry = "Country"
	colImports = "Imports"
	colExports = "Exports"
	colBalance = "Trade Balance"

	colImports2022 = "2022 Imports"
	colExports2022 = "2022 Exports"
	colImports2023 = "2023 Imports"
	colExports2023 = "2023 Exports"
	colImports2024 = "2024 Imports"
	colExports2024 = "2024 Exports"
)

// numericColumn declares one of the nine expected numeric columns: its
// header and where the cleaned value lands on a Record. A column absent
// from the source is synthesized as all zeros, so the assignment simply
// never runs and the zero value stands.
type numericColumn struct {
	header string
	assign func(*models.Record, float64)
}

var numericColumns = []numericColumn{
	{colImports, func(r *models.Record, v float64) { r.Imports = v }},
	{colExports, func(r *models.Record, v float64) { r.Exports = v }},
	{colBalance, func(r *models.Record, v float64) { r.Balance = v }},
	{colImports2022, func(r *models.Record, v float64) { r.Imports2022 = v }},
	{colExports2022, func(r *models.Record, v float64) { r.Exports2022 = v }},
	{colImports2023, func(r *models.Record, v float64) { r.Imports2023 = v }},
	{colExports2023, func(r *models.Record, v float64) { r.Exports2023 = v }},
	{colImports2024, func(r *models.Record, v float64) { r.Imports2024 = v }},
	{colExports2024, func(r *models.Record, v float64) { r.Exports2024 = v }},
}
