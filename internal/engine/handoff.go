package engine

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// FormatHandoffMessage renders the human-readable booking summary sent to
// the operator over WhatsApp.  The layout matches the message the cafe has
// always received, including the blank line left when no seat preference
// was given, so the operator's eye does not have to re-learn it.
func FormatHandoffMessage(rec model.BookingRecord, tier model.Tier, seatPref string) string {
	seatLine := ""
	if seatPref != "" {
		seatLine = fmt.Sprintf("*Seat Preference:* %s", seatPref)
	}
	return fmt.Sprintf(
		"*NEW BOOKING REQUEST* \U0001F3AE\n\n*Ref ID:* %s\n*Name:* %s\n*Phone:* %s\n*Date:* %s\n*Platform:* %s\n%s\n*Duration:* %s\n*Total:* ₹%d\n\nPlease confirm this slot.",
		rec.ID, rec.CustomerName, rec.PhoneNumber, longDate(rec.Date), tier.DisplayLabel, seatLine, rec.Duration, rec.Price,
	)
}

// BuildHandoffURL percent-encodes the message into a WhatsApp deep link.
// Opening the link is the caller's concern; no response is ever consumed.
func BuildHandoffURL(operatorNumber, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", operatorNumber, encoded)
}

// longDate reformats YYYY-MM-DD as a long-form date ("January 2, 2006").
// An unparseable value is passed through untouched; validation upstream
// makes that unreachable in practice.
func longDate(ymd string) string {
	t, err := time.Parse("2006-01-02", ymd)
	if err != nil {
		return ymd
	}
	return t.Format("January 2, 2006")
}
