package queue

import "sync"

// Bus is the in-process notification bus shared by otherwise decoupled
// components.  It carries exactly two signals: a tier was chosen on the
// pricing surface (payload: tier id, the booking engine adopts it as the
// default), and the booking collection changed (no payload, the admin
// view re-reads it).  Handlers run synchronously on the publisher's
// goroutine and must not block.
type Bus struct {
	mu          sync.RWMutex
	tierSubs    []func(tierID string)
	updatedSubs []func()
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// SubscribeTierSelected registers a handler for tier-selection signals.
func (b *Bus) SubscribeTierSelected(fn func(tierID string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tierSubs = append(b.tierSubs, fn)
}

// PublishTierSelected tells subscribers which tier was chosen elsewhere.
func (b *Bus) PublishTierSelected(tierID string) {
	b.mu.RLock()
	subs := b.tierSubs
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(tierID)
	}
}

// SubscribeBookingUpdated registers a handler for collection-changed signals.
func (b *Bus) SubscribeBookingUpdated(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updatedSubs = append(b.updatedSubs, fn)
}

// PublishBookingUpdated tells subscribers the booking collection changed.
// The signal is advisory: it does not carry the change itself.
func (b *Bus) PublishBookingUpdated() {
	b.mu.RLock()
	subs := b.updatedSubs
	b.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
