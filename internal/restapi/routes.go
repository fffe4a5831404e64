package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetRoutes registers the dashboard data API. Every endpoint carries the
// full widget state in its query string; the server recomputes the view
// from the cached table on each request.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	logRequests := NewRequestLoggingMiddleware(api.Logger)

	wrap := func(h http.HandlerFunc) http.Handler {
		return logRequests(securityHeaders(CompressionMiddleware(h)))
	}

	router.Handler(http.MethodGet, "/api/trade/summary.json", wrap(api.summaryHandler))
	router.Handler(http.MethodGet, "/api/trade/records.json", wrap(api.recordsHandler))
	router.Handler(http.MethodGet, "/api/trade/comparison.json", wrap(api.comparisonHandler))
	router.Handler(http.MethodGet, "/api/trade/correlation.json", wrap(api.correlationHandler))
	router.Handler(http.MethodGet, "/api/trade/trend/:country", wrap(api.trendHandler))
}
