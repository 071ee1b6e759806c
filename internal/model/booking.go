package model

// BookingStatus enumerates the lifecycle states of a stored booking.
// Records are written as PENDING; the CONFIRMED value is reserved for a
// confirmation flow that does not exist yet, so no code transitions it.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
)

// BookingRecord is the persisted booking entity.  The whole collection is
// stored as one JSON array blob under a single store key, so the JSON tags
// are part of the storage format and must stay stable.
//
// Fields:
//  ID           – reference identifier shown to the customer ("BK-" prefix).
//  CustomerName – name entered on the booking form.
//  PhoneNumber  – 10-digit contact number.
//  Date         – booking date as YYYY-MM-DD (local calendar date).
//  Platform     – display name of the booked tier.
//  Duration     – human text of the booked duration ("3 Hours").
//  Price        – total price in whole rupees.
//  Timestamp    – creation time in epoch milliseconds.
//  Status       – PENDING on creation; never mutated afterwards.
type BookingRecord struct {
	ID           string        `json:"id"`
	CustomerName string        `json:"customerName"`
	PhoneNumber  string        `json:"phoneNumber"`
	Date         string        `json:"date"`
	Platform     string        `json:"platform"`
	Duration     string        `json:"duration"`
	Price        int           `json:"price"`
	Timestamp    int64         `json:"timestamp"`
	Status       BookingStatus `json:"status"`
}

// BookingDraft is the transient, in-memory form state behind a submission.
// It is never persisted; a successful submission produces a BookingRecord
// and the draft is discarded.
//
// Honeypot carries the value of a form field invisible to humans, and
// MountedAt the epoch-ms time the form was rendered.  Both feed the
// anti-bot checks.  SeatPreference is optional and purely informational:
// the seat map is decorative and no inventory is held against it.
type BookingDraft struct {
	CustomerName   string `json:"customer_name"`
	PhoneNumber    string `json:"phone_number"`
	Date           string `json:"date"`
	TierID         string `json:"tier_id"`
	DurationID     int    `json:"duration_id"`
	SeatPreference string `json:"seat_preference,omitempty"`
	Honeypot       string `json:"website,omitempty"`
	MountedAt      int64  `json:"mounted_at"`
}
