package utils

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractCountryFromParams retrieves the country path parameter from the
// request context and removes a trailing ".json" extension.
func ExtractCountryFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	return strings.Split(raw, ".json")[0]
}

// QueryInt reads an integer query parameter, returning the fallback when
// the parameter is absent or blank, and ok=false when it does not parse.
func QueryInt(r *http.Request, name string, fallback int) (value int, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
