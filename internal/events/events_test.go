package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_PublishToAllSubscribers(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	first, cancelFirst := b.Subscribe(1)
	defer cancelFirst()
	second, cancelSecond := b.Subscribe(1)
	defer cancelSecond()

	delivered := b.Publish(Event{Type: SecondaryRefreshed, ImageURLs: []string{"https://img.example.org/a.png"}})
	assert.Equal(t, 2, delivered)

	for _, ch := range []<-chan Event{first, second} {
		ev := <-ch
		assert.Equal(t, SecondaryRefreshed, ev.Type)
		assert.False(t, ev.At.IsZero())
		assert.Equal(t, []string{"https://img.example.org/a.png"}, ev.ImageURLs)
	}
}

func TestBroadcaster_FullSubscriberDoesNotBlock(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	ch, cancel := b.Subscribe(1)
	defer cancel()

	assert.Equal(t, 1, b.Publish(Event{Type: SecondaryRefreshed}))
	assert.Equal(t, 0, b.Publish(Event{Type: SecondaryRefreshed}))
	assert.Len(t, ch, 1)
}

func TestBroadcaster_UnsubscribeAndClose(t *testing.T) {
	t.Parallel()

	b := NewBroadcaster()
	ch, cancel := b.Subscribe(1)
	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.Publish(Event{Type: SecondaryRefreshed}))

	open, cancelOpen := b.Subscribe(1)
	defer cancelOpen()
	b.Close()
	_, ok = <-open
	assert.False(t, ok)

	late, _ := b.Subscribe(1)
	_, ok = <-late
	require.False(t, ok, "subscriptions after Close are closed immediately")
}
