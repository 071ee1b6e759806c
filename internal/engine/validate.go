package engine

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// ErrRejected is the deliberately undifferentiated rejection for the two
// anti-bot checks (honeypot, form age).  No field detail is attached so a
// scripted submitter cannot learn which heuristic tripped.
var ErrRejected = errors.New("submission rejected")

// Validation messages surfaced per field.  The wording is part of the
// product and mirrored in the web client, so it must not drift.
const (
	msgNameRequired = "Name is required"
	msgPhoneInvalid = "Enter valid 10-digit number"
	msgDateRequired = "Please select a booking date"
	msgDatePast     = "Date cannot be in the past"
	msgDateCutoff   = "Bookings closed for today (after 10 PM)"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidationErrors carries per-field messages for a rejected submission.
// All field checks are evaluated independently, so several messages can be
// set at once.  General is reserved for the rate limiter message and stays
// empty here.  It implements error so it can travel up the call chain.
type ValidationErrors struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Date    string `json:"date,omitempty"`
	General string `json:"general,omitempty"`
}

func (v *ValidationErrors) Error() string { return "validation failed" }

// Any reports whether at least one message is set.
func (v *ValidationErrors) Any() bool {
	return v.Name != "" || v.Phone != "" || v.Date != "" || v.General != ""
}

// ValidateSubmission checks a draft against the submission rules at the
// given wall-clock time.  The two anti-bot checks short-circuit with
// ErrRejected; every field check after them runs regardless of the others
// so the caller sees all problems together.  A nil return means the draft
// may proceed to the rate-limit check.
//
// The date is compared as a local calendar date, built from its components
// rather than parsed as a timestamp, so timezone offsets cannot shift it
// across midnight.  Same-day bookings close at the configured cutoff hour.
func ValidateSubmission(d model.BookingDraft, now time.Time, cutoffHour int, minFormAge time.Duration) error {
	if d.Honeypot != "" {
		return ErrRejected
	}
	if now.UnixMilli()-d.MountedAt < minFormAge.Milliseconds() {
		return ErrRejected
	}

	errs := &ValidationErrors{}
	if strings.TrimSpace(d.CustomerName) == "" {
		errs.Name = msgNameRequired
	}
	if !phonePattern.MatchString(d.PhoneNumber) {
		errs.Phone = msgPhoneInvalid
	}
	if d.Date == "" {
		errs.Date = msgDateRequired
	} else if selected, err := time.ParseInLocation("2006-01-02", d.Date, now.Location()); err != nil {
		errs.Date = msgDateRequired
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		switch {
		case selected.Before(today):
			errs.Date = msgDatePast
		case selected.Equal(today) && now.Hour() >= cutoffHour:
			errs.Date = msgDateCutoff
		}
	}

	if errs.Any() {
		return errs
	}
	return nil
}
