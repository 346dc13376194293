package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the item write repository.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// Version is the current schema version of every item event.
// Increment on breaking changes.
const Version = 1

// Topics lists every item topic, in publish order of an item's lifecycle.
var Topics = []string{TopicItemCreated, TopicItemUpdated, TopicItemDeleted}

// ItemCreatedEvent is published in the same transaction that inserts an Item.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`
	ItemID      int64     `json:"item_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	Brand       *string   `json:"brand,omitempty"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemUpdatedEvent carries the field values after an update.
type ItemUpdatedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ItemID      int64     `json:"item_id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	Brand       *string   `json:"brand,omitempty"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published when a row is removed.
type ItemDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ItemRef is the subset shared by every item event; consumers that only need
// the id (cache invalidation) decode into it regardless of topic.
type ItemRef struct {
	EventID uuid.UUID `json:"event_id"`
	Version int       `json:"version"`
	ItemID  int64     `json:"item_id"`
}
