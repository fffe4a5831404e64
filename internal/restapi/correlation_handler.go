package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
)

// correlationPoint is one bubble of the market size matrix.
type correlationPoint struct {
	Country string  `json:"country"`
	Imports float64 `json:"imports"`
	Exports float64 `json:"exports"`
}

// correlationHandler serves the scatter view data. The chart uses log
// axes, so records with a zero on either axis are excluded here, not in
// the chart layer.
func (api *RestAPI) correlationHandler(w http.ResponseWriter, r *http.Request) {
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

	points := []correlationPoint{}
	for _, rec := range records {
		if rec.Imports > 0 && rec.Exports > 0 {
			points = append(points, correlationPoint{
				Country: rec.Country,
				Imports: rec.Imports,
				Exports: rec.Exports,
			})
		}
	}

	api.sendResponse(w, r, models.NewListResponse(points))
}
