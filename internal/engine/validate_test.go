package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggwellplayed/booking-service/internal/model"
)

const (
	testCutoffHour = 22
	testMinFormAge = 2 * time.Second
)

// validDraft returns a draft that passes every check relative to now.
func validDraft(now time.Time) model.BookingDraft {
	return model.BookingDraft{
		CustomerName: "Arjun",
		PhoneNumber:  "9876543210",
		Date:         now.AddDate(0, 0, 1).Format("2006-01-02"),
		TierID:       "mid",
		DurationID:   3,
		MountedAt:    now.Add(-10 * time.Second).UnixMilli(),
	}
}

func fieldErrors(t *testing.T, err error) *ValidationErrors {
	t.Helper()
	require.Error(t, err)
	verrs, ok := err.(*ValidationErrors)
	require.True(t, ok, "expected field errors, got %v", err)
	return verrs
}

func TestValidateSubmissionAccepts(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	assert.NoError(t, ValidateSubmission(validDraft(now), now, testCutoffHour, testMinFormAge))
}

func TestValidateSubmissionIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	d := validDraft(now)
	d.CustomerName = "  "
	d.PhoneNumber = "123"
	first := ValidateSubmission(d, now, testCutoffHour, testMinFormAge)
	second := ValidateSubmission(d, now, testCutoffHour, testMinFormAge)
	assert.Equal(t, first, second)
}

func TestValidateSubmissionHoneypot(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	d := validDraft(now) // all other fields valid
	d.Honeypot = "http://spam.example"
	err := ValidateSubmission(d, now, testCutoffHour, testMinFormAge)
	// Generic rejection with no field detail, regardless of field validity.
	assert.ErrorIs(t, err, ErrRejected)
}

func TestValidateSubmissionFormAge(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)

	d := validDraft(now)
	d.MountedAt = now.Add(-1999 * time.Millisecond).UnixMilli()
	assert.ErrorIs(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge), ErrRejected)

	// At exactly the threshold the timing check no longer blocks.
	d.MountedAt = now.Add(-2 * time.Second).UnixMilli()
	assert.NoError(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
}

func TestValidateSubmissionFieldErrorsReportedTogether(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	d := validDraft(now)
	d.CustomerName = "   "
	d.PhoneNumber = "98765"
	d.Date = ""
	verrs := fieldErrors(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
	assert.Equal(t, "Name is required", verrs.Name)
	assert.Equal(t, "Enter valid 10-digit number", verrs.Phone)
	assert.Equal(t, "Please select a booking date", verrs.Date)
	assert.Empty(t, verrs.General)
}

func TestValidateSubmissionPhone(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	for _, phone := range []string{"", "12345", "98765432101", "98765x3210", "98765 3210"} {
		d := validDraft(now)
		d.PhoneNumber = phone
		verrs := fieldErrors(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
		assert.Equal(t, "Enter valid 10-digit number", verrs.Phone, "phone %q", phone)
	}
}

func TestValidateSubmissionPastDate(t *testing.T) {
	// Past dates are rejected at any time of day.
	for _, hour := range []int{0, 12, 23} {
		now := time.Date(2026, 8, 31, hour, 30, 0, 0, time.Local)
		d := validDraft(now)
		d.Date = now.AddDate(0, 0, -1).Format("2006-01-02")
		verrs := fieldErrors(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
		assert.Equal(t, "Date cannot be in the past", verrs.Date, "hour %d", hour)
	}
}

func TestValidateSubmissionSameDayCutoff(t *testing.T) {
	today := "2026-08-31"

	// 21:59:59 local: same-day booking still allowed.
	now := time.Date(2026, 8, 31, 21, 59, 59, 0, time.Local)
	d := validDraft(now)
	d.Date = today
	assert.NoError(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))

	// Exactly 22:00:00: closed for today.
	now = time.Date(2026, 8, 31, 22, 0, 0, 0, time.Local)
	d = validDraft(now)
	d.Date = today
	verrs := fieldErrors(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
	assert.Equal(t, "Bookings closed for today (after 10 PM)", verrs.Date)

	// The cutoff only applies to today; tomorrow books fine at 23:00.
	now = time.Date(2026, 8, 31, 23, 0, 0, 0, time.Local)
	d = validDraft(now)
	assert.NoError(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
}

func TestValidateSubmissionMalformedDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.Local)
	d := validDraft(now)
	d.Date = "31/08/2026"
	verrs := fieldErrors(t, ValidateSubmission(d, now, testCutoffHour, testMinFormAge))
	assert.Equal(t, "Please select a booking date", verrs.Date)
}
