package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/repository"
	"github.com/ggwellplayed/booking-service/internal/store"
)

func seedRepo(t *testing.T, records ...model.BookingRecord) *repository.BookingRepo {
	t.Helper()
	repo := repository.NewBookingRepo(store.NewMemory(), "ggwellplayed")
	t.Cleanup(repo.Close)
	for _, r := range records {
		require.NoError(t, repo.Append(context.Background(), r))
	}
	return repo
}

func adminRec(id, name, phone, platform string, price int, ts int64) model.BookingRecord {
	return model.BookingRecord{
		ID:           id,
		CustomerName: name,
		PhoneNumber:  phone,
		Date:         "2026-09-01",
		Platform:     platform,
		Duration:     "1 Hour",
		Price:        price,
		Timestamp:    ts,
		Status:       model.StatusPending,
	}
}

func doAdmin(t *testing.T, h *AdminHandler, method, target string, fn func(echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rw := httptest.NewRecorder()
	c := e.NewContext(req, rw)
	require.NoError(t, fn(c))
	return rw
}

func TestAdminListSortedAndFiltered(t *testing.T) {
	h := NewAdminHandler(seedRepo(t,
		adminRec("BK-a", "Arjun", "9876543210", "Mid-End 144Hz", 50, 100),
		adminRec("BK-b", "Priya", "9123456780", "Console PS4", 100, 300),
		adminRec("BK-c", "arjun kumar", "9000000000", "Mid-End 144Hz", 150, 200),
	))

	rw := doAdmin(t, h, http.MethodGet, "/v1/admin/bookings", h.ListBookings)
	assert.Equal(t, http.StatusOK, rw.Code)
	var body struct {
		Bookings []model.BookingRecord `json:"bookings"`
		Total    int                   `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
	require.Equal(t, 3, body.Total)
	assert.Equal(t, []string{"BK-b", "BK-c", "BK-a"},
		[]string{body.Bookings[0].ID, body.Bookings[1].ID, body.Bookings[2].ID})

	// Case-insensitive name match.
	rw = doAdmin(t, h, http.MethodGet, "/v1/admin/bookings?q=ARJUN", h.ListBookings)
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)

	// Phone substring match.
	rw = doAdmin(t, h, http.MethodGet, "/v1/admin/bookings?q=912345", h.ListBookings)
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "BK-b", body.Bookings[0].ID)
}

func TestAdminStats(t *testing.T) {
	h := NewAdminHandler(seedRepo(t,
		adminRec("BK-a", "Arjun", "9876543210", "Mid-End 144Hz", 50, 400),
		adminRec("BK-b", "Priya", "9123456780", "Console PS4", 100, 300),
		adminRec("BK-c", "Rahul", "9000000000", "Mid-End 144Hz", 150, 200),
	))

	rw := doAdmin(t, h, http.MethodGet, "/v1/admin/stats", h.GetStats)
	assert.Equal(t, http.StatusOK, rw.Code)
	var stats struct {
		TotalRevenue int    `json:"total_revenue"`
		TotalCount   int    `json:"total_count"`
		TopPlatform  string `json:"top_platform"`
	}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &stats))
	assert.Equal(t, 300, stats.TotalRevenue)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, "Mid-End 144Hz", stats.TopPlatform)
}

func TestAdminStatsTieBreaksFirstEncountered(t *testing.T) {
	// One booking each; newest first, so the newest platform is
	// encountered first and wins the tie.
	h := NewAdminHandler(seedRepo(t,
		adminRec("BK-a", "Arjun", "9876543210", "Mid-End 144Hz", 50, 100),
		adminRec("BK-b", "Priya", "9123456780", "Console PS4", 100, 200),
	))
	rw := doAdmin(t, h, http.MethodGet, "/v1/admin/stats", h.GetStats)
	var stats struct {
		TopPlatform string `json:"top_platform"`
	}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &stats))
	assert.Equal(t, "Console PS4", stats.TopPlatform)
}

func TestAdminStatsEmpty(t *testing.T) {
	h := NewAdminHandler(seedRepo(t))
	rw := doAdmin(t, h, http.MethodGet, "/v1/admin/stats", h.GetStats)
	var stats struct {
		TotalRevenue int    `json:"total_revenue"`
		TopPlatform  string `json:"top_platform"`
	}
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalRevenue)
	assert.Equal(t, "-", stats.TopPlatform)
}

func TestAdminExportCSV(t *testing.T) {
	h := NewAdminHandler(seedRepo(t,
		adminRec("BK-a", "=CMD|'/C calc'!A0", "9876543210", "Mid-End 144Hz", 50, 100),
	))

	rw := doAdmin(t, h, http.MethodGet, "/v1/admin/export", h.ExportCSV)
	assert.Equal(t, http.StatusOK, rw.Code)
	assert.Contains(t, rw.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rw.Header().Get(echo.HeaderContentDisposition), "attachment; filename=")
	assert.Contains(t, rw.Header().Get(echo.HeaderContentDisposition), ".csv")

	body := rw.Body.String()
	assert.Contains(t, body, "ID,Name,Phone,Date,Platform,Duration,Price,Timestamp")
	assert.Contains(t, body, "'=CMD")
}

func TestAdminClear(t *testing.T) {
	repo := seedRepo(t,
		adminRec("BK-a", "Arjun", "9876543210", "Mid-End 144Hz", 50, 100),
	)
	h := NewAdminHandler(repo)

	rw := doAdmin(t, h, http.MethodDelete, "/v1/admin/bookings", h.ClearBookings)
	assert.Equal(t, http.StatusNoContent, rw.Code)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
