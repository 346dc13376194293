package memory

import (
	"context"

	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	domainsvcs "github.com/ghuser/wardrobe/services/item/domain/services"
)

// ItemWriteRepository implements repositories.ItemWriteRepository on a Store.
type ItemWriteRepository struct {
	store *Store
}

// NewItemWriteRepository returns a write repository over store.
func NewItemWriteRepository(store *Store) *ItemWriteRepository {
	return &ItemWriteRepository{store: store}
}

// Save inserts or updates item and returns the same pointer.
func (r *ItemWriteRepository) Save(ctx context.Context, item *models.Item) (*models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return nil, err
	}
	if err := domainsvcs.ValidateItemForSave(item); err != nil {
		return nil, itemdomain.Database(err)
	}

	rec := toRow(item)
	if !item.HasID() {
		rec.id = r.store.nextID
		if err := item.AssignID(models.ReconstituteItemID(rec.id)); err != nil {
			return nil, err
		}
		r.store.nextID++
		r.store.rows[rec.id] = rec
		return item, nil
	}

	rec.id = item.ID().Value()
	prev, ok := r.store.rows[rec.id]
	if !ok {
		return nil, itemdomain.ItemNotFound(rec.id)
	}
	rec.createdAt = prev.createdAt
	r.store.rows[rec.id] = rec
	return item, nil
}

// FindByID returns a fresh aggregate, or nil when absent.
func (r *ItemWriteRepository) FindByID(ctx context.Context, id models.ItemID) (*models.Item, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return nil, err
	}
	rec, ok := r.store.rows[id.Value()]
	if !ok {
		return nil, nil
	}
	return rec.aggregate(), nil
}

// Delete reports whether a row was removed.
func (r *ItemWriteRepository) Delete(ctx context.Context, id models.ItemID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return false, err
	}
	if _, ok := r.store.rows[id.Value()]; !ok {
		return false, nil
	}
	delete(r.store.rows, id.Value())
	return true, nil
}
