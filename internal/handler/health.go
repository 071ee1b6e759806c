package handler

import (
	"net/http"                 // status codes
	"time"                     // uptime measurement
	"github.com/labstack/echo/v4" // web framework
)

var startedAt = time.Now()

// Health returns service liveness plus how long the process has been up.
// It takes no dependencies: a healthy response means the HTTP layer is
// serving, nothing more.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
