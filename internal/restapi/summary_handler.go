package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/utils"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	state, fieldErrors := api.parseFilterState(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	summary, err := api.TradeManager.Summary(r.Context(), state.MinRank, state.MaxRank)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	data := map[string]interface{}{
		"entry": summary,
		"formatted": map[string]string{
			"totalImports": utils.FormatKUSD(summary.TotalImports),
			"totalExports": utils.FormatKUSD(summary.TotalExports),
			"meanBalance":  utils.FormatKUSD(summary.MeanBalance),
		},
		"rankRange": map[string]int{
			"minRank": state.MinRank,
			"maxRank": state.MaxRank,
		},
	}

	api.sendResponse(w, r, models.NewOKResponse(data))
}
