package webui

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradedash.openmarkets.org/internal/app"
	"tradedash.openmarkets.org/internal/appconf"
	"tradedash.openmarkets.org/internal/logging"
	"tradedash.openmarkets.org/internal/trade"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func createTestWebUI(t *testing.T) *WebUI {
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

	return NewWebUI(app)
}

func serveWebUIEndpoint(t *testing.T, endpoint string) (*http.Response, []byte) {
	t.Helper()

	webUI := createTestWebUI(t)
	router := httprouter.New()
	webUI.SetRoutes(router)
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

func TestDashboardHandler(t *testing.T) {
	resp, body := serveWebUIEndpoint(t, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page := string(body)
	assert.Contains(t, page, "Promising Markets Trade Dashboard")
	assert.Contains(t, page, "United States")
	assert.Contains(t, page, "3,168,588")
	assert.Contains(t, page, "/charts/comparison.png")
}

func TestDashboardHandlerAppliesRankFilter(t *testing.T) {
	_, body := serveWebUIEndpoint(t, "/?minRank=2&maxRank=3")

	page := string(body)
	assert.Contains(t, page, "China")
	assert.Contains(t, page, "Germany")
	assert.NotContains(t, page, "<td>United States</td>")
}

func TestDashboardHandlerEmptyRangeShowsPlaceholder(t *testing.T) {
	resp, body := serveWebUIEndpoint(t, "/?minRank=26&maxRank=30")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "No countries in the selected rank range.")
}

func TestDashboardHandlerInvalidStateFallsBackToDefaults(t *testing.T) {
	resp, body := serveWebUIEndpoint(t, "/?minRank=abc&maxRank=-4")

	assert.Equal(t, http.StatusOK, resp.StatusCode, "page controls are forgiving, never a 400")
	assert.Contains(t, string(body), "United States")
}

func TestChartHandlersServePNG(t *testing.T) {
	endpoints := []string{
		"/charts/comparison.png",
		"/charts/correlation.png",
		"/charts/trend.png",
		"/charts/trend.png?country=United+States",
		"/charts/trend.png?country=Atlantis",
		"/charts/comparison.png?minRank=26&maxRank=30",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			resp, body := serveWebUIEndpoint(t, endpoint)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
			assert.True(t, bytes.HasPrefix(body, pngMagic), "response is not a PNG image")
		})
	}
}

func TestDebugIndexHandler(t *testing.T) {
	resp, body := serveWebUIEndpoint(t, "/debug/?dataType=records")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Micronesia")
}

func TestViewStateQueryRoundTrip(t *testing.T) {
	state := viewState{MinRank: 2, MaxRank: 9, SortBy: "exports", Country: "United States"}

	query := state.query()
	assert.Contains(t, query, "minRank=2")
	assert.Contains(t, query, "maxRank=9")
	assert.Contains(t, query, "sortBy=exports")
	assert.True(t, strings.Contains(query, "country=United+States") || strings.Contains(query, "country=United%20States"))
}
