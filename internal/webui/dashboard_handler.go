package webui

import (
	"embed"
	"html/template"
	"net/http"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/utils"
)

//go:embed dashboard.html
var dashboardFS embed.FS

// recordRow is one line of the raw-data table, values preformatted.
type recordRow struct {
	Rank    int
	Country string
	Imports string
	Exports string
	Balance string
}

type dashboardData struct {
	MinRank      int
	MaxRank      int
	RankFloor    int
	RankCeiling  int
	SortBy       models.SortColumn
	SortColumns  []models.SortColumn
	Country      string
	Countries    []string
	CountryCount int
	TotalImports string
	TotalExports string
	MeanBalance  string
	Rows         []recordRow
	ChartQuery   string
	HasData      bool
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := webUI.parseViewState(r)

	summary, err := webUI.TradeManager.Summary(ctx, state.MinRank, state.MaxRank)
	if err != nil {
		webUI.renderError(w, err)
		return
	}

	records, err := webUI.TradeManager.FilteredRecords(ctx, state.MinRank, state.MaxRank)
	if err != nil {
		webUI.renderError(w, err)
		return
	}

	countries, err := webUI.TradeManager.FilteredCountries(ctx, state.MinRank, state.MaxRank)
	if err != nil {
		webUI.renderError(w, err)
		return
	}

	// The selector offers the filtered countries; the default selection
	// is the first of them. A manually supplied country outside the
	// filtered set is kept, the trend lookup runs against the full table.
	if state.Country == "" && len(countries) > 0 {
		state.Country = countries[0]
	}

	rows := make([]recordRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow{
			Rank:    rec.Rank,
			Country: rec.Country,
			Imports: utils.FormatThousands(rec.Imports),
			Exports: utils.FormatThousands(rec.Exports),
			Balance: utils.FormatThousands(rec.Balance),
		})
	}

	rankFloor, rankCeiling := webUI.TradeManager.RankBounds()
	data := dashboardData{
		MinRank:      state.MinRank,
		MaxRank:      state.MaxRank,
		RankFloor:    rankFloor,
		RankCeiling:  rankCeiling,
		SortBy:       state.SortBy,
		SortColumns:  []models.SortColumn{models.SortByImports, models.SortByExports, models.SortByBalance},
		Country:      state.Country,
		Countries:    countries,
		CountryCount: summary.CountryCount,
		TotalImports: utils.FormatKUSD(summary.TotalImports),
		TotalExports: utils.FormatKUSD(summary.TotalExports),
		MeanBalance:  utils.FormatKUSD(summary.MeanBalance),
		Rows:         rows,
		ChartQuery:   state.query(),
		HasData:      len(records) > 0,
	}

	tmpl, err := template.ParseFS(dashboardFS, "dashboard.html")
	if err != nil {
		webUI.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, data); err != nil {
		webUI.Logger.Error("failed to render dashboard", "error", err)
	}
}

func (webUI *WebUI) renderError(w http.ResponseWriter, err error) {
	webUI.Logger.Error("dashboard render failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
