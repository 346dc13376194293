// Package subscribers holds the item context's event handlers run by
// cmd/worker.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	itemevents "github.com/ghuser/wardrobe/services/item/domain/events"
)

// Subscriber is the part of *events.EventBus the worker needs.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Evicter removes cached item projections. *cache.ItemCache satisfies it.
type Evicter interface {
	Delete(ctx context.Context, itemID int64) error
}

// CacheInvalidator evicts the detail cache entry of every item that an
// event reports as created, updated or deleted. The API already evicts
// synchronously; this covers writers that bypass the cached repository.
type CacheInvalidator struct {
	cache Evicter
	log   logger.Logger
}

func NewCacheInvalidator(cache Evicter, log logger.Logger) *CacheInvalidator {
	return &CacheInvalidator{cache: cache, log: log}
}

// Handle is idempotent: evicting a missing key is a no-op. A malformed
// payload is logged and acked since redelivery cannot fix it.
func (c *CacheInvalidator) Handle(ctx context.Context, msg *message.Message) error {
	var ref itemevents.ItemRef
	if err := json.Unmarshal(msg.Payload, &ref); err != nil || ref.ItemID <= 0 {
		c.log.WarnContext(ctx, "dropping malformed item event",
			"message_uuid", msg.UUID, "error", err)
		return nil
	}
	if err := c.cache.Delete(ctx, ref.ItemID); err != nil {
		return fmt.Errorf("evict item %d: %w", ref.ItemID, err)
	}
	c.log.DebugContext(ctx, "item cache evicted",
		"item_id", ref.ItemID, "event_id", ref.EventID)
	return nil
}

// Register subscribes inv to every item topic and drains the subscriber
// error channels into the log.
func Register(ctx context.Context, bus Subscriber, inv *CacheInvalidator, log logger.Logger) error {
	for _, topic := range itemevents.Topics {
		errCh, err := bus.Subscribe(ctx, topic, inv.Handle)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
				telemetry.CaptureError(ctx, err, map[string]string{"topic": topic})
			}
		}(topic)
	}

	log.Info("event subscribers registered", "topics", itemevents.Topics)
	return nil
}
