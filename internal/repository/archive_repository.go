package repository

import (
	"context"
	"database/sql"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// ArchiveRepo mirrors bookings into MySQL for durable keeping.  The KV
// blob stays the authoritative read path for the admin view; the archive
// is an advisory copy written by the booking.created consumer, so a lost
// insert never affects the booking flow.
type ArchiveRepo struct {
	db *sql.DB
}

// NewArchiveRepo returns a new ArchiveRepo bound to the given database.
func NewArchiveRepo(db *sql.DB) *ArchiveRepo { return &ArchiveRepo{db: db} }

// DB exposes the underlying handle for health checks.
func (r *ArchiveRepo) DB() *sql.DB { return r.db }

// EnsureSchema creates the archive table when it does not exist yet.  The
// reference id is the natural key; re-delivered events are absorbed by
// INSERT IGNORE rather than duplicated.
func (r *ArchiveRepo) EnsureSchema(ctx context.Context) error {
	const q = `CREATE TABLE IF NOT EXISTS bookings (
        id            VARCHAR(64)  NOT NULL PRIMARY KEY,
        customer_name VARCHAR(255) NOT NULL,
        phone_number  VARCHAR(16)  NOT NULL,
        booking_date  CHAR(10)     NOT NULL,
        platform      VARCHAR(64)  NOT NULL,
        duration      VARCHAR(32)  NOT NULL,
        price         INT UNSIGNED NOT NULL,
        booked_at_ms  BIGINT       NOT NULL,
        status        VARCHAR(16)  NOT NULL
    )`
	_, err := r.db.ExecContext(ctx, q)
	return err
}

// Insert writes one booking row.  Duplicate reference ids are ignored so
// the consumer can safely ack after at-least-once delivery.
func (r *ArchiveRepo) Insert(ctx context.Context, rec model.BookingRecord) error {
	const q = `INSERT IGNORE INTO bookings
        (id, customer_name, phone_number, booking_date, platform, duration, price, booked_at_ms, status)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID, rec.CustomerName, rec.PhoneNumber, rec.Date,
		rec.Platform, rec.Duration, rec.Price, rec.Timestamp, string(rec.Status),
	)
	return err
}

// Count returns the number of archived rows, used by the health endpoint
// to report archive lag against the blob count.
func (r *ArchiveRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}
