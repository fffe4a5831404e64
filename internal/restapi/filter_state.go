package restapi

import (
	"net/http"

	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/utils"
)

// filterState carries the widget state of one dashboard interaction:
// the inclusive rank bounds and the comparison sort column.
type filterState struct {
	MinRank int
	MaxRank int
	SortBy  models.SortColumn
}

// parseFilterState reads the filter controls from the query string.
// Absent parameters fall back to the defaults derived from the loaded
// table: the lowest rank present and min(20, max rank). The returned map
// is non-empty when any parameter fails validation.
func (api *RestAPI) parseFilterState(r *http.Request) (filterState, map[string][]string) {
	fieldErrors := make(map[string][]string)

	defaultMin, _ := api.TradeManager.RankBounds()
	state := filterState{SortBy: models.DefaultSortColumn}

	minRank, ok := utils.QueryInt(r, "minRank", defaultMin)
	if !ok {
		fieldErrors["minRank"] = append(fieldErrors["minRank"], "must be an integer")
	}
	state.MinRank = minRank

	maxRank, ok := utils.QueryInt(r, "maxRank", api.TradeManager.DefaultMaxRank())
	if !ok {
		fieldErrors["maxRank"] = append(fieldErrors["maxRank"], "must be an integer")
	}
	state.MaxRank = maxRank

	if len(fieldErrors) == 0 {
		if err := utils.ValidateRankRange(state.MinRank, state.MaxRank); err != nil {
			fieldErrors["maxRank"] = append(fieldErrors["maxRank"], err.Error())
		}
	}

	if raw := r.URL.Query().Get("sortBy"); raw != "" {
		sortBy := models.SortColumn(raw)
		if !sortBy.IsValid() {
			fieldErrors["sortBy"] = append(fieldErrors["sortBy"], "must be one of imports, exports, balance")
		} else {
			state.SortBy = sortBy
		}
	}

	if len(fieldErrors) > 0 {
		return state, fieldErrors
	}
	return state, nil
}
