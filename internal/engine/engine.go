// Package engine implements the booking core: price computation, submission
// validation, anti-abuse heuristics, record creation, persistence through
// the repository layer and the hand-off to the operator's messaging app.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ggwellplayed/booking-service/internal/config"
	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/queue"
	"github.com/ggwellplayed/booking-service/internal/repository"
)

// ErrRateLimited is returned when the attempt ledger is full for the
// current window.  Handlers translate it into HTTP 429 with the standing
// retry message.
var ErrRateLimited = errors.New("too many booking attempts")

// ErrBusy is returned when a submission arrives while a previous one is
// still moving through PROCESSING or REDIRECTING.  The form disables its
// submit control in those states, so this only fires for callers that
// bypass the form.
var ErrBusy = errors.New("submission in progress")

// ErrUnknownSelection is returned when a draft names a tier or duration
// that is not in the catalog.
var ErrUnknownSelection = errors.New("unknown tier or duration")

// HandoffOpener opens the external messaging deep link.  Fire-and-forget:
// no return value is observed by the engine.
type HandoffOpener interface {
	Open(url string)
}

// Publisher sends a booking.created event to the broker.  Declared as a
// function type so tests can substitute the AMQP publisher.
type Publisher func(ctx context.Context, ev queue.BookingCreatedEvent) error

// SubmitResult is returned on a successful submission.  The hand-off URL
// is also opened by the engine after the processing delay; returning it
// lets the HTTP caller redirect immediately if it prefers.
type SubmitResult struct {
	Record     model.BookingRecord `json:"record"`
	HandoffURL string              `json:"handoff_url"`
}

// Engine owns tier/duration selection defaults, validation, the attempt
// ledger and the submission lifecycle.  One engine serves the whole
// process; its state machine mirrors the single booking form it backs.
type Engine struct {
	cfg      config.Config
	bookings *repository.BookingRepo
	ledger   *repository.RateLimitRepo
	bus      *queue.Bus
	opener   HandoffOpener
	publish  Publisher

	mu          sync.Mutex
	state       State
	defaultTier string
	timers      []*time.Timer
	closed      bool
}

// New wires an engine to its collaborators and subscribes it to
// tier-selection signals so a pricing display can preselect the tier used
// when a draft omits one.  opener and publish may be nil; the hand-off
// and broker publication are then skipped (tests, degraded deployments).
func New(cfg config.Config, bookings *repository.BookingRepo, ledger *repository.RateLimitRepo, bus *queue.Bus, opener HandoffOpener, publish Publisher) *Engine {
	e := &Engine{
		cfg:         cfg,
		bookings:    bookings,
		ledger:      ledger,
		bus:         bus,
		opener:      opener,
		publish:     publish,
		state:       StateIdle,
		defaultTier: model.Tiers[0].ID,
	}
	if bus != nil {
		bus.SubscribeTierSelected(e.adoptTier)
	}
	return e
}

// adoptTier records a tier chosen elsewhere as the new default.  Unknown
// ids are ignored rather than corrupting the default.
func (e *Engine) adoptTier(tierID string) {
	if _, ok := model.TierByID(tierID); !ok {
		return
	}
	e.mu.Lock()
	e.defaultTier = tierID
	e.mu.Unlock()
}

// DefaultTier returns the tier preselected for the next draft.
func (e *Engine) DefaultTier() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.defaultTier
}

// Quote resolves a tier/duration pair against the catalog and prices it.
func (e *Engine) Quote(tierID string, durationID int) (int, error) {
	tier, ok := model.TierByID(tierID)
	if !ok {
		return 0, fmt.Errorf("%w: tier %q", ErrUnknownSelection, tierID)
	}
	duration, ok := model.DurationByID(durationID)
	if !ok {
		return 0, fmt.Errorf("%w: duration %d", ErrUnknownSelection, durationID)
	}
	return ComputeTotalPrice(tier, duration), nil
}

// CreateBooking constructs a record from a validated draft.  Pure
// construction: nothing is persisted.  The reference id is a UUID under a
// fixed prefix; the legacy timestamp+random scheme could collide under
// concurrent submissions and was retired.
func CreateBooking(d model.BookingDraft, tier model.Tier, duration model.DurationOption, price int, now time.Time) model.BookingRecord {
	return model.BookingRecord{
		ID:           "BK-" + uuid.NewString(),
		CustomerName: d.CustomerName,
		PhoneNumber:  d.PhoneNumber,
		Date:         d.Date,
		Platform:     tier.Name,
		Duration:     duration.Text,
		Price:        price,
		Timestamp:    now.UnixMilli(),
		Status:       model.StatusPending,
	}
}

// persistBooking appends the record and notifies both buses.  Persistence
// is best-effort: a storage fault is logged and the hand-off still
// proceeds, so the worst case is a booking confirmed to the customer but
// missing from the local collection.
func (e *Engine) persistBooking(ctx context.Context, rec model.BookingRecord) {
	if err := e.bookings.Append(ctx, rec); err != nil {
		logrus.WithError(err).WithField("booking_id", rec.ID).Error("failed to persist booking")
		return
	}
	if e.bus != nil {
		e.bus.PublishBookingUpdated()
	}
	if e.publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:    rec.ID,
			CustomerName: rec.CustomerName,
			PhoneNumber:  rec.PhoneNumber,
			Date:         rec.Date,
			Platform:     rec.Platform,
			Duration:     rec.Duration,
			Price:        rec.Price,
			Status:       string(rec.Status),
			CreatedAtMs:  rec.Timestamp,
		}
		go func() {
			pctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = e.publish(pctx, ev) // advisory; failure already logged by the publisher
		}()
	}
}
