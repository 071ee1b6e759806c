package engine

import (
	"context"
	"time"

	"github.com/ggwellplayed/booking-service/internal/model"
)

// State is the submission lifecycle state.  The machine has no terminal
// state; it returns to IDLE after every accepted submission and can be
// re-entered indefinitely.
type State string

const (
	StateIdle        State = "IDLE"
	StateProcessing  State = "PROCESSING"
	StateRedirecting State = "REDIRECTING"
)

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Submit runs the full submission: validation, rate limiting, record
// creation, persistence and the timed hand-off.  Failures of validation
// or the rate limit leave the machine in IDLE and report the reason.
//
// On success the machine enters PROCESSING and the record is created,
// persisted and announced immediately; after the processing delay it
// enters REDIRECTING and the hand-off link is opened; after the redirect
// delay it returns to IDLE.  The delays are presentation pacing, not
// computation, and are scheduled continuations rather than sleeps so
// Close can drop them without side effects.
func (e *Engine) Submit(ctx context.Context, d model.BookingDraft, now time.Time) (SubmitResult, error) {
	tierID := d.TierID
	if tierID == "" {
		tierID = e.DefaultTier()
	}
	tier, ok := model.TierByID(tierID)
	if !ok {
		return SubmitResult{}, ErrUnknownSelection
	}
	duration, ok := model.DurationByID(d.DurationID)
	if !ok {
		return SubmitResult{}, ErrUnknownSelection
	}

	if err := ValidateSubmission(d, now, e.cfg.CutoffHour, e.cfg.MinFormAge); err != nil {
		return SubmitResult{}, err
	}
	if !e.ledger.CheckAndRecord(ctx, now) {
		return SubmitResult{}, ErrRateLimited
	}

	e.mu.Lock()
	if e.closed || e.state != StateIdle {
		e.mu.Unlock()
		return SubmitResult{}, ErrBusy
	}
	e.state = StateProcessing
	e.mu.Unlock()

	price := ComputeTotalPrice(tier, duration)
	rec := CreateBooking(d, tier, duration, price, now)
	e.persistBooking(ctx, rec)

	handoffURL := BuildHandoffURL(e.cfg.WhatsAppNumber, FormatHandoffMessage(rec, tier, d.SeatPreference))

	e.schedule(e.cfg.ProcessingDelay, func() {
		e.setState(StateRedirecting)
		if e.opener != nil {
			e.opener.Open(handoffURL)
		}
		e.schedule(e.cfg.RedirectDelay, func() {
			e.setState(StateIdle)
		})
	})

	return SubmitResult{Record: rec, HandoffURL: handoffURL}, nil
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// schedule runs fn after d unless the engine has been closed.  Timers are
// tracked so Close can stop the pending ones.
func (e *Engine) schedule(d time.Duration, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	t := time.AfterFunc(d, fn)
	e.timers = append(e.timers, t)
}

// Close cancels pending lifecycle timers.  There is no partial write to
// roll back: persistence happened before the first timer was armed.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for _, t := range e.timers {
		t.Stop()
	}
	e.timers = nil
	e.state = StateIdle
}
