// Package events distributes change notifications for a user's data.
//
// Every successful write to the store publishes an event describing the
// change. Subscribers (currently the websocket feed) receive the events
// of their user and reconcile their local view with Collection.
package events

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EventType describes what happened to a resource.
type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is a single change notification. Payload carries the resource
// in its API representation, for deletes only the ID is meaningful.
type Event struct {
	Type    EventType       `json:"type" example:"update"`
	Table   string          `json:"table" example:"transactions"`
	ID      uuid.UUID       `json:"id" example:"d3c4bbe5-e796-4ff9-8a41-52325ba165c0"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// subscriberBuffer is the channel capacity per subscriber. A subscriber
// that falls further behind has its events dropped.
const subscriberBuffer = 16

// Broker fans events out to the subscribers of a user.
//
// Publish never blocks: a subscriber that does not drain its channel
// loses events. That is acceptable because clients resynchronize by
// reloading the collection, the feed is an optimization.
type Broker struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]map[chan Event]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[uuid.UUID]map[chan Event]struct{}),
	}
}

// Subscribe registers for the events of a user. The returned cancel
// function unregisters and closes the channel, it is safe to call more
// than once.
func (b *Broker) Subscribe(userID uuid.UUID) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	if b.subscribers[userID] == nil {
		b.subscribers[userID] = make(map[chan Event]struct{})
	}
	b.subscribers[userID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers[userID], ch)
			if len(b.subscribers[userID]) == 0 {
				delete(b.subscribers, userID)
			}
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers the event to all current subscribers of the user.
func (b *Broker) Publish(userID uuid.UUID, event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers[userID] {
		select {
		case ch <- event:
		default:
			log.Warn().Str("user", userID.String()).Str("table", event.Table).Msg("dropping event for slow subscriber")
		}
	}
}
