// Package utils holds small helpers shared across handlers.
package utils

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// csvHeaders is the fixed column order of the booking export.
var csvHeaders = []string{"ID", "Name", "Phone", "Date", "Platform", "Duration", "Price", "Timestamp"}

// SanitizeCell neutralizes spreadsheet formula injection: a cell starting
// with '=', '+', '-' or '@' is prefixed with a single quote so Excel and
// Sheets render it as text instead of executing it.
func SanitizeCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@':
		return "'" + value
	}
	return value
}

// BookingsCSV renders the given records as a comma-separated export with
// every field passed through SanitizeCell.  Timestamps are rendered as a
// human-readable local time like the admin table shows them.
func BookingsCSV(records []model.BookingRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}
	for _, b := range records {
		row := []string{
			SanitizeCell(b.ID),
			SanitizeCell(b.CustomerName),
			SanitizeCell(b.PhoneNumber),
			SanitizeCell(b.Date),
			SanitizeCell(b.Platform),
			SanitizeCell(b.Duration),
			SanitizeCell(strconv.Itoa(b.Price)),
			time.UnixMilli(b.Timestamp).Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportFilename returns the date-stamped download name for the export.
func ExportFilename(now time.Time) string {
	return "ggwellplayed_bookings_" + now.Format("2006-01-02") + ".csv"
}
