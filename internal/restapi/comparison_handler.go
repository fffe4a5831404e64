package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
)

// comparisonHandler serves the market comparison view data: the filtered
// records ordered descending by the chosen sort column.
func (api *RestAPI) comparisonHandler(w http.ResponseWriter, r *http.Request) {
	state, fieldErrors := api.parseFilterState(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records, err := api.TradeManager.Comparison(r.Context(), state.MinRank, state.MaxRank, state.SortBy)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	data := map[string]interface{}{
		"list":   records,
		"sortBy": state.SortBy,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
