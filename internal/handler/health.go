package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Healthz answers liveness probes.
func Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
