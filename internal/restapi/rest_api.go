package restapi

import (
	"tradedash.openmarkets.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
	}
}
