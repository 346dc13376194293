// Package cached decorates the item repositories with a Redis read-through
// cache of ItemDetail projections. The write decorator invalidates entries
// synchronously so a read-back after Save or Delete never sees stale data.
package cached

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// DetailCache is the subset of *cache.ItemCache used by the decorators.
// Get returns redis.Nil on a miss.
type DetailCache interface {
	Get(ctx context.Context, itemID int64) (*readmodels.ItemDetail, error)
	Set(ctx context.Context, item *readmodels.ItemDetail) error
	Delete(ctx context.Context, itemID int64) error
}

// ItemReadRepository serves FindByID from the cache when possible. List
// queries always go to the wrapped repository.
type ItemReadRepository struct {
	next  repositories.ItemReadRepository
	cache DetailCache
	log   logger.Logger
}

// NewItemReadRepository wraps next with cache.
func NewItemReadRepository(next repositories.ItemReadRepository, cache DetailCache, log logger.Logger) *ItemReadRepository {
	return &ItemReadRepository{next: next, cache: cache, log: log}
}

// FindByID implements the read-through pattern:
//  1. Check Redis first.
//  2. On a miss (or a cache error) query the wrapped repository.
//  3. Store a found projection. Absent items are not cached.
func (r *ItemReadRepository) FindByID(ctx context.Context, id models.ItemID) (*readmodels.ItemDetail, error) {
	cached, err := r.cache.Get(ctx, id.Value())
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.log.WarnContext(ctx, "item cache read failed, falling back to database",
			"item_id", id.Value(), "error", err)
	}

	detail, err := r.next.FindByID(ctx, id)
	if err != nil || detail == nil {
		return detail, err
	}

	if err := r.cache.Set(ctx, detail); err != nil {
		r.log.WarnContext(ctx, "item cache write failed", "item_id", id.Value(), "error", err)
	}
	return detail, nil
}

func (r *ItemReadRepository) FindAll(ctx context.Context) ([]readmodels.ItemListEntry, error) {
	return r.next.FindAll(ctx)
}

func (r *ItemReadRepository) FindByCategory(ctx context.Context, category models.Category) ([]readmodels.ItemListEntry, error) {
	return r.next.FindByCategory(ctx, category)
}

// ItemWriteRepository evicts the cached projection after every successful
// update or delete. Inserts need no eviction: a new id was never cached.
type ItemWriteRepository struct {
	next  repositories.ItemWriteRepository
	cache DetailCache
	log   logger.Logger
}

// NewItemWriteRepository wraps next with cache invalidation.
func NewItemWriteRepository(next repositories.ItemWriteRepository, cache DetailCache, log logger.Logger) *ItemWriteRepository {
	return &ItemWriteRepository{next: next, cache: cache, log: log}
}

func (r *ItemWriteRepository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	wasPersisted := item != nil && item.HasID()
	saved, err := r.next.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	if wasPersisted {
		r.evict(ctx, saved.ID())
	}
	return saved, nil
}

func (r *ItemWriteRepository) FindByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	return r.next.FindByID(ctx, id)
}

func (r *ItemWriteRepository) Delete(ctx context.Context, id models.ItemID) (bool, error) {
	removed, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		r.evict(ctx, id)
	}
	return removed, nil
}

// evict drops the cache entry. A failure is logged, not returned: the row
// change already committed and the worker evicts again on the event.
func (r *ItemWriteRepository) evict(ctx context.Context, id models.ItemID) {
	if err := r.cache.Delete(ctx, id.Value()); err != nil {
		r.log.ErrorContext(ctx, "item cache eviction failed", "item_id", id.Value(), "error", err)
	}
}
