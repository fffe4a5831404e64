package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/utils"
)

// trendHandler serves the per-country three-year trend view. The country
// is looked up against the full unfiltered table, so a selection that
// fell out of the current rank range still resolves.
func (api *RestAPI) trendHandler(w http.ResponseWriter, r *http.Request) {
	country := utils.ExtractCountryFromParams(r, "country")
	if err := utils.ValidateCountryName(country); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{
			"country": {err.Error()},
		})
		return
	}

	trend, ok := api.TradeManager.TrendFor(country)
	if !ok {
		api.notFoundResponse(w, r, "country not found")
		return
	}

	data := map[string]interface{}{
		"entry": trend,
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
