package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
)

// recordsHandler serves the raw-data table view: the cleaned records
// within the rank range, ordered by rank.
func (api *RestAPI) recordsHandler(w http.ResponseWriter, r *http.Request) {
	state, fieldErrors := api.parseFilterState(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	records, err := api.TradeManager.FilteredRecords(r.Context(), state.MinRank, state.MaxRank)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	api.sendResponse(w, r, models.NewListResponse(records))
}
