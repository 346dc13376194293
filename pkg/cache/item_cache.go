package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// DefaultItemCacheTTL applies when NewItemCache is given a non-positive ttl.
const DefaultItemCacheTTL = 10 * time.Minute

const itemCacheKeyPrefix = "item:detail"

// ItemCache stores readmodels.ItemDetail projections as Redis hashes.
// Optional fields (brand, description) are omitted from the hash when nil.
// Key format: "item:detail:{itemID}"
type ItemCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = DefaultItemCacheTTL
	}
	return &ItemCache{client: r, ttl: ttl}
}

// Get retrieves a cached projection by item id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*readmodels.ItemDetail, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(itemID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}

	detail := &readmodels.ItemDetail{
		ID:        id,
		Name:      vals["name"],
		Category:  vals["category"],
		Color:     vals["color"],
		CreatedAt: vals["created_at"],
		UpdatedAt: vals["updated_at"],
	}
	if v, ok := vals["brand"]; ok {
		detail.Brand = &v
	}
	if v, ok := vals["description"]; ok {
		detail.Description = &v
	}
	return detail, nil
}

// Set replaces the cached projection and refreshes its TTL in one MULTI/EXEC.
func (c *ItemCache) Set(ctx context.Context, item *readmodels.ItemDetail) error {
	key := c.key(item.ID)
	fields := []any{
		"id", strconv.FormatInt(item.ID, 10),
		"name", item.Name,
		"category", item.Category,
		"color", item.Color,
		"created_at", item.CreatedAt,
		"updated_at", item.UpdatedAt,
	}
	if item.Brand != nil {
		fields = append(fields, "brand", *item.Brand)
	}
	if item.Description != nil {
		fields = append(fields, "description", *item.Description)
	}

	_, err := c.client.Client().TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields...)
		pipe.Expire(ctx, key, c.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached projection. Deleting a missing key is not an error.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// TTL reports the expiry applied by Set.
func (c *ItemCache) TTL() time.Duration {
	return c.ttl
}

// key builds the Redis key: "item:detail:{itemID}"
func (c *ItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, itemID)
}
