package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusTierSelected(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.SubscribeTierSelected(func(id string) { got = append(got, id) })
	bus.SubscribeTierSelected(func(id string) { got = append(got, "second:"+id) })

	bus.PublishTierSelected("ps4")
	assert.Equal(t, []string{"ps4", "second:ps4"}, got)
}

func TestBusBookingUpdated(t *testing.T) {
	bus := NewBus()
	count := 0
	bus.SubscribeBookingUpdated(func() { count++ })

	bus.PublishBookingUpdated()
	bus.PublishBookingUpdated()
	assert.Equal(t, 2, count)
}

func TestBusNoSubscribers(t *testing.T) {
	bus := NewBus()
	// Publishing with nobody listening must not panic.
	bus.PublishTierSelected("mid")
	bus.PublishBookingUpdated()
}
