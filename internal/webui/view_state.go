package webui

import (
	"net/http"
	"net/url"
	"strconv"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/utils"
)

// viewState is the widget state of one dashboard render: the inclusive
// rank bounds, the comparison sort column and the trend country.
type viewState struct {
	MinRank int
	MaxRank int
	SortBy  models.SortColumn
	Country string
}

// parseViewState reads the dashboard controls from the query string.
// The page controls are forgiving: anything absent or invalid falls back
// to the defaults derived from the loaded table.
func (webUI *WebUI) parseViewState(r *http.Request) viewState {
	defaultMin, _ := webUI.TradeManager.RankBounds()
	defaultMax := webUI.TradeManager.DefaultMaxRank()

	state := viewState{SortBy: models.DefaultSortColumn}

	minRank, ok := utils.QueryInt(r, "minRank", defaultMin)
	if !ok {
		minRank = defaultMin
	}
	maxRank, ok := utils.QueryInt(r, "maxRank", defaultMax)
	if !ok {
		maxRank = defaultMax
	}
	if utils.ValidateRankRange(minRank, maxRank) != nil {
		minRank, maxRank = defaultMin, defaultMax
	}
	state.MinRank = minRank
	state.MaxRank = maxRank

	if sortBy := models.SortColumn(r.URL.Query().Get("sortBy")); sortBy.IsValid() {
		state.SortBy = sortBy
	}

	if country := r.URL.Query().Get("country"); utils.ValidateCountryName(country) == nil {
		state.Country = country
	}

	return state
}

// query re-encodes the state so chart URLs carry the same widget state
// as the page they are embedded in.
func (state viewState) query() string {
	values := url.Values{}
	values.Set("minRank", strconv.Itoa(state.MinRank))
	values.Set("maxRank", strconv.Itoa(state.MaxRank))
	values.Set("sortBy", string(state.SortBy))
	if state.Country != "" {
		values.Set("country", state.Country)
	}
	return values.Encode()
}
