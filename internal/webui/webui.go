package webui

import (
	"tradedash.openmarkets.org/internal/app"
)

// WebUI serves the dashboard page, the rendered chart panels and the
// debug views.
type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{
		Application: app,
	}
}
