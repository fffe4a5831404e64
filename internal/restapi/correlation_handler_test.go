package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationHandlerExcludesZeroAxisCountries(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/correlation.json?minRank=24&maxRank=25")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)

	for _, item := range list {
		point, ok := item.(map[string]interface{})
		require.True(t, ok)
		assert.NotEqual(t, "Micronesia", point["country"],
			"countries with zero exports must not appear on the log-log scatter")
		assert.Greater(t, point["imports"].(float64), 0.0)
		assert.Greater(t, point["exports"].(float64), 0.0)
	}
}

func TestCorrelationHandlerPointShape(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/correlation.json?minRank=1&maxRank=1")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	point, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "United States", point["country"])
	assert.InDelta(t, 3168588.0, point["imports"], 0.001)
	assert.InDelta(t, 2084521.0, point["exports"], 0.001)
}

func TestCorrelationHandlerEmptyRangeReturnsEmptyList(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/correlation.json?minRank=26&maxRank=30")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok, "empty selections must serialize as [], not null")
	assert.Empty(t, list)
}
