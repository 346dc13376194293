package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/services/item/domain/events"
)

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	brand := "Uniqlo"
	evt := events.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    events.Version,
		ItemID:     42,
		Name:       "White T-Shirt",
		Category:   "tops",
		Color:      "white",
		Brand:      &brand,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "category", "color", "brand", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if _, ok := raw["description"]; ok {
		t.Errorf("absent description must be omitted: %s", data)
	}
}

func TestItemRef_DecodesEveryEvent(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	payloads := map[string]any{
		events.TopicItemCreated: events.ItemCreatedEvent{EventID: id, Version: 1, ItemID: 7, Name: "Coat"},
		events.TopicItemUpdated: events.ItemUpdatedEvent{EventID: id, Version: 1, ItemID: 7, Name: "Coat"},
		events.TopicItemDeleted: events.ItemDeletedEvent{EventID: id, Version: 1, ItemID: 7},
	}

	for topic, evt := range payloads {
		t.Run(topic, func(t *testing.T) {
			data, err := json.Marshal(evt)
			if err != nil {
				t.Fatalf("json.Marshal failed: %v", err)
			}
			var ref events.ItemRef
			if err := json.Unmarshal(data, &ref); err != nil {
				t.Fatalf("json.Unmarshal failed: %v", err)
			}
			if ref.ItemID != 7 || ref.EventID != id || ref.Version != 1 {
				t.Fatalf("unexpected ref: %+v", ref)
			}
		})
	}
}

func TestTopics(t *testing.T) {
	want := []string{"item.created", "item.updated", "item.deleted"}
	if len(events.Topics) != len(want) {
		t.Fatalf("expected %d topics, got %d", len(want), len(events.Topics))
	}
	for i, topic := range want {
		if events.Topics[i] != topic {
			t.Errorf("topic %d: got %q, want %q", i, events.Topics[i], topic)
		}
	}
}
