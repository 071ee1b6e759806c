package engine

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ggwellplayed/booking-service/internal/config"
	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/queue"
	"github.com/ggwellplayed/booking-service/internal/repository"
	"github.com/ggwellplayed/booking-service/internal/store"
)

type recordingOpener struct {
	mu   sync.Mutex
	urls []string
}

func (o *recordingOpener) Open(url string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.urls = append(o.urls, url)
}

func (o *recordingOpener) opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.urls...)
}

func testConfig() config.Config {
	return config.Config{
		Env:             "test",
		WhatsAppNumber:  "918888237925",
		StorePrefix:     "ggwellplayed",
		CutoffHour:      22,
		MinFormAge:      2 * time.Second,
		ProcessingDelay: 10 * time.Millisecond,
		RedirectDelay:   10 * time.Millisecond,
		Booking: config.BookingLimitConfig{
			Window:   5 * time.Minute,
			Limit:    3,
			FailOpen: true,
		},
	}
}

type engineFixture struct {
	eng    *Engine
	kv     *store.Memory
	repo   *repository.BookingRepo
	bus    *queue.Bus
	opener *recordingOpener
	events chan queue.BookingCreatedEvent
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	cfg := testConfig()
	kv := store.NewMemory()
	repo := repository.NewBookingRepo(kv, cfg.StorePrefix)
	t.Cleanup(repo.Close)
	ledger := repository.NewRateLimitRepo(kv, cfg.StorePrefix, cfg.Booking)
	bus := queue.NewBus()
	opener := &recordingOpener{}
	events := make(chan queue.BookingCreatedEvent, 8)
	publish := func(_ context.Context, ev queue.BookingCreatedEvent) error {
		events <- ev
		return nil
	}
	eng := New(cfg, repo, ledger, bus, opener, publish)
	t.Cleanup(eng.Close)
	return &engineFixture{eng: eng, kv: kv, repo: repo, bus: bus, opener: opener, events: events}
}

// End-to-end: a valid draft prices at 150, is persisted as PENDING, bumps
// the attempt ledger and produces a hand-off with the total and date.
func TestSubmitEndToEnd(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	updated := make(chan struct{}, 1)
	f.bus.SubscribeBookingUpdated(func() { updated <- struct{}{} })

	draft := model.BookingDraft{
		CustomerName: "Arjun",
		PhoneNumber:  "9876543210",
		Date:         now.AddDate(0, 0, 1).Format("2006-01-02"),
		TierID:       "mid",
		DurationID:   3,
		MountedAt:    now.Add(-10 * time.Second).UnixMilli(),
	}
	result, err := f.eng.Submit(context.Background(), draft, now)
	require.NoError(t, err)

	assert.Equal(t, 150, result.Record.Price)
	assert.Equal(t, model.StatusPending, result.Record.Status)
	assert.Equal(t, "Mid-End 144Hz", result.Record.Platform)
	assert.Equal(t, "3 Hours", result.Record.Duration)
	assert.True(t, len(result.Record.ID) > 3 && result.Record.ID[:3] == "BK-")
	assert.Contains(t, result.HandoffURL, "api.whatsapp.com/send?phone=918888237925")

	// Persisted and announced on both buses.
	records, err := f.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, result.Record, records[0])

	select {
	case <-updated:
	default:
		t.Fatal("booking-updated signal not published")
	}
	select {
	case ev := <-f.events:
		assert.Equal(t, result.Record.ID, ev.BookingID)
		assert.Equal(t, 150, ev.Price)
	case <-time.After(time.Second):
		t.Fatal("booking.created event not published")
	}

	// Ledger recorded exactly one attempt, stamped with the submit time.
	blob, ok, err := f.kv.Get(context.Background(), "ggwellplayed_ratelimit")
	require.NoError(t, err)
	require.True(t, ok)
	var attempts []int64
	require.NoError(t, json.Unmarshal([]byte(blob), &attempts))
	require.Len(t, attempts, 1)
	assert.Equal(t, now.UnixMilli(), attempts[0])
}

func TestSubmitLifecycle(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	assert.Equal(t, StateIdle, f.eng.State())

	draft := model.BookingDraft{
		CustomerName: "Priya",
		PhoneNumber:  "9123456780",
		Date:         now.AddDate(0, 0, 2).Format("2006-01-02"),
		TierID:       "high",
		DurationID:   1,
		MountedAt:    now.Add(-time.Minute).UnixMilli(),
	}
	result, err := f.eng.Submit(context.Background(), draft, now)
	require.NoError(t, err)
	assert.Equal(t, StateProcessing, f.eng.State())

	// A second submission while the machine is busy is refused without
	// touching the store.
	_, err = f.eng.Submit(context.Background(), draft, now)
	assert.ErrorIs(t, err, ErrBusy)

	// PROCESSING -> REDIRECTING opens the hand-off link.
	assert.Eventually(t, func() bool {
		return f.eng.State() == StateRedirecting || f.eng.State() == StateIdle
	}, time.Second, time.Millisecond)
	assert.Eventually(t, func() bool {
		return f.eng.State() == StateIdle
	}, time.Second, time.Millisecond)

	urls := f.opener.opened()
	require.Len(t, urls, 1)
	assert.Equal(t, result.HandoffURL, urls[0])

	// Back in IDLE the machine accepts the next booking.
	draft.MountedAt = time.Now().Add(-time.Minute).UnixMilli()
	_, err = f.eng.Submit(context.Background(), draft, time.Now())
	assert.NoError(t, err)
}

func TestSubmitValidationKeepsIdle(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	draft := model.BookingDraft{
		CustomerName: "",
		PhoneNumber:  "12",
		Date:         "",
		TierID:       "mid",
		DurationID:   3,
		MountedAt:    now.Add(-time.Minute).UnixMilli(),
	}
	_, err := f.eng.Submit(context.Background(), draft, now)
	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, StateIdle, f.eng.State())

	// Nothing persisted, nothing recorded in the ledger.
	records, err := f.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
	_, ok, err := f.kv.Get(context.Background(), "ggwellplayed_ratelimit")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmitRateLimited(t *testing.T) {
	f := newEngineFixture(t)

	draft := func(now time.Time) model.BookingDraft {
		return model.BookingDraft{
			CustomerName: "Arjun",
			PhoneNumber:  "9876543210",
			Date:         now.AddDate(0, 0, 1).Format("2006-01-02"),
			TierID:       "mid",
			DurationID:   1,
			MountedAt:    now.Add(-time.Minute).UnixMilli(),
		}
	}

	now := time.Now()
	for i := 0; i < 3; i++ {
		_, err := f.eng.Submit(context.Background(), draft(now), now)
		require.NoError(t, err, "attempt %d", i+1)
		require.Eventually(t, func() bool { return f.eng.State() == StateIdle }, time.Second, time.Millisecond)
	}

	_, err := f.eng.Submit(context.Background(), draft(now), now)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestSubmitAdoptsPreselectedTier(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	f.bus.PublishTierSelected("ps4")
	assert.Equal(t, "ps4", f.eng.DefaultTier())

	// Unknown ids are ignored.
	f.bus.PublishTierSelected("vr9000")
	assert.Equal(t, "ps4", f.eng.DefaultTier())

	draft := model.BookingDraft{
		CustomerName: "Rahul",
		PhoneNumber:  "9988776655",
		Date:         now.AddDate(0, 0, 1).Format("2006-01-02"),
		DurationID:   5, // TierID left empty on purpose
		MountedAt:    now.Add(-time.Minute).UnixMilli(),
	}
	result, err := f.eng.Submit(context.Background(), draft, now)
	require.NoError(t, err)
	assert.Equal(t, "Console PS4", result.Record.Platform)
	assert.Equal(t, 450, result.Record.Price)
}

func TestSubmitUnknownSelection(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	draft := model.BookingDraft{
		CustomerName: "Arjun",
		PhoneNumber:  "9876543210",
		Date:         now.AddDate(0, 0, 1).Format("2006-01-02"),
		TierID:       "mid",
		DurationID:   2, // not in the catalog
		MountedAt:    now.Add(-time.Minute).UnixMilli(),
	}
	_, err := f.eng.Submit(context.Background(), draft, now)
	assert.ErrorIs(t, err, ErrUnknownSelection)
}
