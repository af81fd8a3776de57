// Package handler contains the page handlers: public marketing pages,
// login, and the client/admin dashboards. Handlers fetch from the backend
// through the api client, translate failures into per-page display state
// and render templates; they hold no state between requests.
package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"

	"github.com/cohai/studio-web/internal/api"
	mw "github.com/cohai/studio-web/internal/middleware"
)

// pageData seeds the render payload every template expects: page title,
// resolved session state and the CSRF field for forms.
func pageData(c echo.Context, title string) map[string]any {
	return map[string]any{
		"Title":   title,
		"Session": mw.SessionFrom(c),
		"CSRF":    csrf.TemplateField(c.Request()),
	}
}

// formID parses a positive int64 form or query value; anything else reads
// as 0 ("not selected").
func formID(c echo.Context, name string) int64 {
	v := strings.TrimSpace(c.FormValue(name))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// paramID parses a path parameter id. Returns 0 when malformed.
func paramID(c echo.Context, name string) int64 {
	n, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// optString maps an empty (or whitespace) form value to nil so the backend
// receives null instead of "".
func optString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// backendMessage extracts the backend's human-readable rejection text, or
// "" when the failure never reached the backend.
func backendMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// safeNext accepts only site-local redirect targets from user input.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}
