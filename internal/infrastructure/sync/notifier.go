package sync

import (
	"context"
	"sync"

	"piramida/pkg/logger"
)

// Collection names the notifier publishes for.
const (
	CollectionSubmissions = "propertySubmissions"
	CollectionListings    = "activeListings"
	CollectionAdmins      = "adminsList"
	CollectionPricing     = "pricingSettings"
	CollectionInquiries   = "propertyInquiries"
)

// Event tells a subscriber which collection changed.
type Event struct {
	Collection string `json:"collection"`
}

// Notifier fans collection-change events out to subscribers. It replaces the
// browser's storage event plus the in-page custom event: writers publish once,
// and every open page re-reads its derived state.
type Notifier struct {
	subscribers map[int]subscriber
	nextID      int
	mutex       sync.RWMutex
}

type subscriber struct {
	collections map[string]bool
	ch          chan Event
}

func NewNotifier() *Notifier {
	return &Notifier{
		subscribers: make(map[int]subscriber),
	}
}

// Subscribe registers interest in the given collections (all collections when
// none are named). The returned cancel function drops the subscription.
func (n *Notifier) Subscribe(collections ...string) (<-chan Event, func()) {
	filter := make(map[string]bool, len(collections))
	for _, c := range collections {
		filter[c] = true
	}

	n.mutex.Lock()
	id := n.nextID
	n.nextID++
	ch := make(chan Event, 16)
	n.subscribers[id] = subscriber{collections: filter, ch: ch}
	n.mutex.Unlock()

	cancel := func() {
		n.mutex.Lock()
		if sub, ok := n.subscribers[id]; ok {
			delete(n.subscribers, id)
			close(sub.ch)
		}
		n.mutex.Unlock()
	}
	return ch, cancel
}

// Publish notifies every subscriber interested in the collection. Slow
// subscribers are skipped rather than blocking the writer.
func (n *Notifier) Publish(collection string) {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	for _, sub := range n.subscribers {
		if len(sub.collections) > 0 && !sub.collections[collection] {
			continue
		}
		select {
		case sub.ch <- Event{Collection: collection}:
		default:
			logger.Warn("Dropping change event for %s: subscriber not keeping up", collection)
		}
	}
}

// Run keeps the notifier alive until the context is cancelled, then closes
// every remaining subscription.
func (n *Notifier) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		n.mutex.Lock()
		for id, sub := range n.subscribers {
			delete(n.subscribers, id)
			close(sub.ch)
		}
		n.mutex.Unlock()
	}()
}
