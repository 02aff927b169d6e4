package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierDeliversToInterestedSubscribers(t *testing.T) {
	n := NewNotifier()

	listings, cancelListings := n.Subscribe(CollectionListings)
	defer cancelListings()
	all, cancelAll := n.Subscribe()
	defer cancelAll()

	n.Publish(CollectionSubmissions)
	n.Publish(CollectionListings)

	select {
	case event := <-listings:
		assert.Equal(t, CollectionListings, event.Collection)
	case <-time.After(time.Second):
		t.Fatal("expected a listings event")
	}

	// The unfiltered subscriber sees both.
	first := <-all
	second := <-all
	assert.Equal(t, CollectionSubmissions, first.Collection)
	assert.Equal(t, CollectionListings, second.Collection)
}

func TestNotifierCancelClosesChannel(t *testing.T) {
	n := NewNotifier()

	events, cancel := n.Subscribe(CollectionAdmins)
	cancel()

	_, open := <-events
	require.False(t, open)

	// Publishing after cancel must not panic.
	n.Publish(CollectionAdmins)
}
