// Package queue defines message payloads exchanged over the message broker
// and the in-process notification bus.
package queue

import "github.com/ggwellplayed/booking-service/internal/model"

// BookingCreatedEvent is published when a validated booking has been
// written to the store.  It carries enough information for downstream
// consumers to log or archive the booking without re-reading the blob.
type BookingCreatedEvent struct {
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	Date         string `json:"date"`
	Platform     string `json:"platform"`
	Duration     string `json:"duration"`
	Price        int    `json:"price"`
	Status       string `json:"status"`
	CreatedAtMs  int64  `json:"created_at_ms"`
}

// toRecord rebuilds the stored record shape from the event so the archive
// consumer can insert it without re-reading the blob.
func (ev BookingCreatedEvent) toRecord() model.BookingRecord {
	return model.BookingRecord{
		ID:           ev.BookingID,
		CustomerName: ev.CustomerName,
		PhoneNumber:  ev.PhoneNumber,
		Date:         ev.Date,
		Platform:     ev.Platform,
		Duration:     ev.Duration,
		Price:        ev.Price,
		Timestamp:    ev.CreatedAtMs,
		Status:       model.BookingStatus(ev.Status),
	}
}
