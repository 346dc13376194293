package memory

import (
	"context"

	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// ItemReadRepository implements repositories.ItemReadRepository on a Store.
type ItemReadRepository struct {
	store *Store
}

// NewItemReadRepository returns a read repository over store.
func NewItemReadRepository(store *Store) *ItemReadRepository {
	return &ItemReadRepository{store: store}
}

func (r *ItemReadRepository) FindByID(ctx context.Context, id models.ItemID) (*readmodels.ItemDetail, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return nil, err
	}
	rec, ok := r.store.rows[id.Value()]
	if !ok {
		return nil, nil
	}
	return rec.detail(), nil
}

func (r *ItemReadRepository) FindAll(ctx context.Context) ([]readmodels.ItemListEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return nil, err
	}
	return r.store.list(func(row) bool { return true }), nil
}

func (r *ItemReadRepository) FindByCategory(ctx context.Context, category models.Category) ([]readmodels.ItemListEntry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.enter(ctx); err != nil {
		return nil, err
	}
	return r.store.list(func(rec row) bool { return rec.category == category.Value() }), nil
}
