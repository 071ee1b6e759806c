package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/repository"
	"github.com/ggwellplayed/booking-service/internal/utils"
)

// AdminHandler is the read path over the booking collection: listing with
// substring search, aggregate stats, CSV export and the bulk clear.  Per
// product decision the admin surface carries no authentication; it is the
// operator's local view, not a public API.
type AdminHandler struct {
	Bookings *repository.BookingRepo
}

// NewAdminHandler constructs an AdminHandler.  The repository must be
// non-nil.
func NewAdminHandler(repo *repository.BookingRepo) *AdminHandler {
	if repo == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{Bookings: repo}
}

// ListBookings handles GET /v1/admin/bookings?q=.  Records come back
// newest first; the optional q filter matches name and id
// case-insensitively and phone by plain substring.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	records, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	}
	filtered := filterBookings(records, c.QueryParam("q"))
	return c.JSON(http.StatusOK, echo.Map{"bookings": filtered, "total": len(filtered)})
}

// GetStats handles GET /v1/admin/stats: revenue sum, booking count and the
// most frequent platform (ties broken by first encountered).
func (h *AdminHandler) GetStats(c echo.Context) error {
	records, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	}
	revenue := 0
	for _, b := range records {
		revenue += b.Price
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_revenue": revenue,
		"total_count":   len(records),
		"top_platform":  topPlatform(records),
	})
}

// ExportCSV handles GET /v1/admin/export.  The filtered, sorted set is
// rendered as CSV with formula-prefix escaping and offered as a
// date-stamped download.
func (h *AdminHandler) ExportCSV(c echo.Context) error {
	records, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	}
	filtered := filterBookings(records, c.QueryParam("q"))
	out, err := utils.BookingsCSV(filtered)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+utils.ExportFilename(time.Now())+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", out)
}

// ClearBookings handles DELETE /v1/admin/bookings: the explicit bulk
// "clear all" operator action.  There is no single-record delete.
func (h *AdminHandler) ClearBookings(c echo.Context) error {
	if err := h.Bookings.Clear(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store unavailable"})
	}
	return c.NoContent(http.StatusNoContent)
}

// filterBookings applies the dashboard search: case-insensitive substring
// over name and id, plain substring over phone.  An empty term matches
// everything.
func filterBookings(records []model.BookingRecord, term string) []model.BookingRecord {
	if term == "" {
		return records
	}
	lower := strings.ToLower(term)
	out := make([]model.BookingRecord, 0, len(records))
	for _, b := range records {
		if strings.Contains(strings.ToLower(b.CustomerName), lower) ||
			strings.Contains(strings.ToLower(b.ID), lower) ||
			strings.Contains(b.PhoneNumber, term) {
			out = append(out, b)
		}
	}
	return out
}

// topPlatform returns the platform with the most bookings, "-" for an
// empty collection.  Counting keeps first-encounter order so ties resolve
// to the platform seen first, matching the dashboard's behavior.
func topPlatform(records []model.BookingRecord) string {
	if len(records) == 0 {
		return "-"
	}
	counts := map[string]int{}
	var order []string
	for _, b := range records {
		if _, seen := counts[b.Platform]; !seen {
			order = append(order, b.Platform)
		}
		counts[b.Platform]++
	}
	top := order[0]
	for _, p := range order[1:] {
		if counts[p] > counts[top] {
			top = p
		}
	}
	return top
}
