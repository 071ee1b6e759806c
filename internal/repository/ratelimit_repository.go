package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ggwellplayed/booking-service/internal/config"
	"github.com/ggwellplayed/booking-service/internal/store"
)

// RateLimitRepo owns the booking-attempt ledger: an ordered JSON array of
// epoch-ms timestamps under its own store key, one entry per attempt.
// Entries older than the window are pruned lazily on each check, so the
// ledger never grows past limit+1 entries across a check-and-record cycle.
//
// The ledger is an anti-spam heuristic, not a security boundary.  When the
// store cannot be read or the blob is malformed the check fails open by
// default (configurable), preferring availability over enforcement.
type RateLimitRepo struct {
	mu  sync.Mutex
	st  store.Store
	key string
	cfg config.BookingLimitConfig
}

// NewRateLimitRepo returns a ledger bound to the given store and key prefix.
func NewRateLimitRepo(st store.Store, prefix string, cfg config.BookingLimitConfig) *RateLimitRepo {
	return &RateLimitRepo{st: st, key: prefix + "_ratelimit", cfg: cfg}
}

// CheckAndRecord prunes stale entries and, if fewer than the limit remain
// inside the window, appends now and reports true.  When the window is
// full it reports false without appending.  Mutations are serialized by
// the repo's lock; this protects a single process, not concurrent
// deployments, which is an accepted limitation for a one-location cafe.
func (r *RateLimitRepo) CheckAndRecord(ctx context.Context, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	blob, ok, err := r.st.Get(ctx, r.key)
	if err != nil {
		logrus.WithError(err).Warn("attempt ledger read failed")
		return r.cfg.FailOpen
	}
	var history []int64
	if ok {
		if err := json.Unmarshal([]byte(blob), &history); err != nil {
			logrus.WithError(err).Warn("attempt ledger malformed")
			return r.cfg.FailOpen
		}
	}

	nowMs := now.UnixMilli()
	windowMs := r.cfg.Window.Milliseconds()
	recent := history[:0]
	for _, ts := range history {
		if nowMs-ts < windowMs {
			recent = append(recent, ts)
		}
	}
	if len(recent) >= r.cfg.Limit {
		return false
	}

	recent = append(recent, nowMs)
	out, err := json.Marshal(recent)
	if err != nil {
		return r.cfg.FailOpen
	}
	if err := r.st.Set(ctx, r.key, string(out)); err != nil {
		// The attempt is allowed even though it was not recorded; the
		// ledger write is best-effort like every other storage write.
		logrus.WithError(err).Warn("attempt ledger write failed")
		return r.cfg.FailOpen
	}
	return true
}
