package events_test

import (
	"testing"

	"github.com/circulo-sport/courtdesk/events"
	"github.com/stretchr/testify/require"
)

func TestBusDelivers(t *testing.T) {
	bus := events.NewBus(4)
	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	bus.Publish(events.Event{Type: events.BookingSaved, Payload: "b1"})

	got := <-first
	require.Equal(t, events.BookingSaved, got.Type)
	require.False(t, got.At.IsZero())

	got = <-second
	require.Equal(t, "b1", got.Payload)
}

func TestBusDropsForSlowSubscriber(t *testing.T) {
	bus := events.NewBus(1)
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(events.Event{Type: events.LedgerPosted})
	bus.Publish(events.Event{Type: events.LedgerDeleted})

	require.Len(t, ch, 1)
	require.Equal(t, events.LedgerPosted, (<-ch).Type)
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := events.NewBus(1)
	ch, cancel := bus.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	require.False(t, open)

	bus.Publish(events.Event{Type: events.CloseCreated})
}
