package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"tradedash.openmarkets.org/internal/app"
	"tradedash.openmarkets.org/internal/appconf"
	"tradedash.openmarkets.org/internal/logging"
	"tradedash.openmarkets.org/internal/models"
	"tradedash.openmarkets.org/internal/trade"
)

// createTestApi creates a RestAPI instance with the trade manager
// initialized from the test fixture.
func createTestApi(t *testing.T) *RestAPI {
	t.Helper()

	tradeConfig := trade.Config{
		DataPath: filepath.Join("../../testdata", "trade.csv"),
		Env:      appconf.Test,
	}
	tradeManager, err := trade.InitManager(tradeConfig)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, tradeManager.Shutdown())
	})

	app := &app.Application{
		Config: app.Config{
			Env: appconf.EnvFlagToEnvironment("test"),
		},
		TradeConfig:  tradeConfig,
		Logger:       logging.NewStructuredLogger(io.Discard, slog.LevelError),
		TradeManager: tradeManager,
	}

	return NewRestAPI(app)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	t.Helper()

	resp, body := serveApiRaw(t, api, endpoint)

	var response models.ResponseModel
	require.NoError(t, json.Unmarshal(body, &response))
	return resp, response
}

// serveApiRaw returns the undecoded body, for endpoints that respond
// outside the standard envelope.
func serveApiRaw(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	t.Helper()

	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// retrieveFieldErrors decodes the validation error payload.
func retrieveFieldErrors(t *testing.T, endpoint string) (*http.Response, map[string][]string) {
	t.Helper()

	api := createTestApi(t)
	resp, body := serveApiRaw(t, api, endpoint)

	var payload struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp, payload.FieldErrors
}
