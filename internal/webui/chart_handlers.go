package webui

import (
	"net/http"

	"tradedash.openmarkets.org/internal/charts"
)

func (webUI *WebUI) comparisonChartHandler(w http.ResponseWriter, r *http.Request) {
	state := webUI.parseViewState(r)

	records, err := webUI.TradeManager.Comparison(r.Context(), state.MinRank, state.MaxRank, state.SortBy)
	if err != nil {
		webUI.chartError(w, err)
		return
	}

	png, err := charts.Comparison(records)
	if err != nil {
		webUI.chartError(w, err)
		return
	}
	webUI.servePNG(w, png)
}

func (webUI *WebUI) correlationChartHandler(w http.ResponseWriter, r *http.Request) {
	state := webUI.parseViewState(r)

	records, err := webUI.TradeManager.FilteredRecords(r.Context(), state.MinRank, state.MaxRank)
	if err != nil {
		webUI.chartError(w, err)
		return
	}

	png, err := charts.Correlation(records)
	if err != nil {
		webUI.chartError(w, err)
		return
	}
	webUI.servePNG(w, png)
}

func (webUI *WebUI) trendChartHandler(w http.ResponseWriter, r *http.Request) {
	state := webUI.parseViewState(r)

	country := state.Country
	if country == "" {
		countries, err := webUI.TradeManager.FilteredCountries(r.Context(), state.MinRank, state.MaxRank)
		if err != nil {
			webUI.chartError(w, err)
			return
		}
		if len(countries) > 0 {
			country = countries[0]
		}
	}

	var png []byte
	var err error
	if trend, ok := webUI.TradeManager.TrendFor(country); ok {
		png, err = charts.Trend(trend)
	} else {
		png, err = charts.Placeholder("Three-Year Trend",
			"No country selected or country not in the dataset")
	}
	if err != nil {
		webUI.chartError(w, err)
		return
	}
	webUI.servePNG(w, png)
}

func (webUI *WebUI) servePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		webUI.Logger.Error("failed to write chart response", "error", err)
	}
}

func (webUI *WebUI) chartError(w http.ResponseWriter, err error) {
	webUI.Logger.Error("chart render failed", "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
