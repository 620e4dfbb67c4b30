package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishReachesAllSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe()
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe()
	defer cleanup2()

	assert.Equal(t, 2, hub.SubscriberCount())

	hub.Publish(Event{Event: "checkin", Data: "EMP001"})

	ev := <-ch1
	assert.Equal(t, "checkin", ev.Event)
	assert.Equal(t, "EMP001", ev.Data)

	ev = <-ch2
	assert.Equal(t, "checkin", ev.Event)
}

func TestHubCleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe()

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// calling cleanup twice must not panic
	cleanup()
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe()
	defer cleanup()

	for i := 0; i < 20; i++ {
		hub.Publish(Event{Event: "checkin", Data: i})
	}

	// buffer holds 10, the rest are dropped
	require.Len(t, ch, 10)
}
