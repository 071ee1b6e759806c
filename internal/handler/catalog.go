package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// GetTiers returns the static platform catalog.  The catalog never changes
// at runtime, so these responses sit behind the response cache.
func GetTiers(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Tiers)
}

// GetDurations returns the static session-length catalog.
func GetDurations(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Durations)
}

// GetSeats returns the decorative floor map.  Statuses are mock data; no
// inventory is held against them.
func GetSeats(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Seats)
}
