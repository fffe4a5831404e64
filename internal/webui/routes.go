package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/", http.HandlerFunc(webUI.dashboardHandler))
	router.Handler(http.MethodGet, "/charts/comparison.png", http.HandlerFunc(webUI.comparisonChartHandler))
	router.Handler(http.MethodGet, "/charts/correlation.png", http.HandlerFunc(webUI.correlationChartHandler))
	router.Handler(http.MethodGet, "/charts/trend.png", http.HandlerFunc(webUI.trendChartHandler))
	router.Handler(http.MethodGet, "/debug/", http.HandlerFunc(webUI.debugIndexHandler))
}
