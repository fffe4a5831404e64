package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsHandlerInclusiveBounds(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/records.json?minRank=5&maxRank=10")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 6)

	first, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, first["rank"])

	last, ok := list[len(list)-1].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 10, last["rank"])
}

func TestRecordsHandlerDefaultRange(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/records.json")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 20)
}

func TestRecordsHandlerEmptyRangeReturnsEmptyList(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/records.json?minRank=26&maxRank=30")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok, "empty selections must serialize as [], not null")
	assert.Empty(t, list)
}

func TestRecordsHandlerSerializesCleanedValues(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/trade/records.json?minRank=25&maxRank=25")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	list, ok := data["list"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 1)

	rec, ok := list[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Micronesia", rec["country"])
	assert.EqualValues(t, 1234, rec["imports"])
	assert.EqualValues(t, 0, rec["exports"])
	assert.EqualValues(t, 0, rec["balance"])
}
