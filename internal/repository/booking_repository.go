package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/store"
)

// BookingRepo owns the persisted booking collection.  The collection is a
// single JSON array blob under one store key, so every mutation is a
// read-modify-write of the whole blob.  To stay correct when several
// requests land at once, all operations are serialized through a single
// owner goroutine; callers never touch the blob directly.
//
// A missing or malformed blob is treated as an empty collection on the
// read path.  Malformed data is logged and then overwritten by the next
// append, which matches the fail-open posture of the rest of the system.
type BookingRepo struct {
	st     store.Store
	key    string
	ops    chan bookingOp
	closed chan struct{}
}

type bookingOp struct {
	fn   func() error
	done chan error
}

// NewBookingRepo returns a repository bound to the given store and key
// prefix, and starts its owner goroutine.  Close must be called to stop it.
func NewBookingRepo(st store.Store, prefix string) *BookingRepo {
	r := &BookingRepo{
		st:     st,
		key:    prefix + "_bookings",
		ops:    make(chan bookingOp),
		closed: make(chan struct{}),
	}
	go r.loop()
	return r
}

// Close stops the owner goroutine.  Pending operations already handed to
// the goroutine finish; later calls fail with ErrClosed.
func (r *BookingRepo) Close() {
	select {
	case <-r.closed:
	default:
		close(r.closed)
	}
}

func (r *BookingRepo) loop() {
	for {
		select {
		case op := <-r.ops:
			op.done <- op.fn()
		case <-r.closed:
			return
		}
	}
}

// run hands fn to the owner goroutine and waits for its result.  The
// context only bounds the caller's wait; a mutation that already started
// runs to completion so the blob is never half-written.
func (r *BookingRepo) run(ctx context.Context, fn func() error) error {
	op := bookingOp{fn: fn, done: make(chan error, 1)}
	select {
	case r.ops <- op:
	case <-r.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Append adds a record to the end of the collection.
func (r *BookingRepo) Append(ctx context.Context, rec model.BookingRecord) error {
	return r.run(ctx, func() error {
		records := r.readAll(ctx)
		records = append(records, rec)
		blob, err := json.Marshal(records)
		if err != nil {
			return err
		}
		return r.st.Set(ctx, r.key, string(blob))
	})
}

// List returns every stored record sorted by creation time, newest first.
func (r *BookingRepo) List(ctx context.Context) ([]model.BookingRecord, error) {
	var records []model.BookingRecord
	err := r.run(ctx, func() error {
		records = r.readAll(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})
	return records, nil
}

// Clear deletes the whole collection.  This is the operator's bulk "clear
// all" action; individual records are never removed.
func (r *BookingRepo) Clear(ctx context.Context) error {
	return r.run(ctx, func() error {
		return r.st.Delete(ctx, r.key)
	})
}

// readAll loads and decodes the blob.  Absence, storage faults and parse
// failures all yield an empty slice; faults are logged so an operator can
// notice data loss without the booking flow ever blocking on it.
func (r *BookingRepo) readAll(ctx context.Context) []model.BookingRecord {
	blob, ok, err := r.st.Get(ctx, r.key)
	if err != nil {
		logrus.WithError(err).WithField("key", r.key).Warn("booking store read failed, treating as empty")
		return nil
	}
	if !ok {
		return nil
	}
	var records []model.BookingRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		logrus.WithError(err).WithField("key", r.key).Warn("booking blob malformed, treating as empty")
		return nil
	}
	return records
}
