package events

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Collection is a local, ordered view of a resource list that is kept
// in sync by applying events. New items are prepended, which matches
// the newest-first ordering of the list endpoints.
//
// Reconciliation is keyed by ID, so replayed or out-of-order events
// converge: an insert for a known ID replaces it instead of duplicating
// it, an update for an unknown ID is treated as an insert, and deletes
// for unknown IDs are no-ops.
type Collection[T any] struct {
	id    func(T) uuid.UUID
	items []T
}

// NewCollection creates an empty collection. The id function extracts
// the reconciliation key from an item.
func NewCollection[T any](id func(T) uuid.UUID) *Collection[T] {
	return &Collection[T]{id: id}
}

// Load replaces the collection contents, e.g. after fetching the full
// list from the API.
func (c *Collection[T]) Load(items []T) {
	c.items = append([]T(nil), items...)
}

// Apply reconciles one event into the collection.
func (c *Collection[T]) Apply(event Event) error {
	if event.Type == EventDelete {
		c.remove(event.ID)
		return nil
	}

	var item T
	err := json.Unmarshal(event.Payload, &item)
	if err != nil {
		return err
	}

	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return nil
		}
	}

	c.items = append([]T{item}, c.items...)
	return nil
}

// Items returns the current contents.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) remove(id uuid.UUID) {
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
