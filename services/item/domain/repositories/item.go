package repositories

import (
	"context"

	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// ItemWriteRepository persists the Item aggregate. Every I/O failure is
// returned as a DATABASE_ERROR.
type ItemWriteRepository interface {
	// Save inserts the item when it has no id and updates it otherwise.
	// On insert the generated id is assigned onto item, and the same pointer
	// is returned. An update that matches no row returns ITEM_NOT_FOUND.
	Save(ctx context.Context, item *models.Item) (*models.Item, error)

	// FindByID returns nil, nil when no item exists for id.
	FindByID(ctx context.Context, id models.ItemID) (*models.Item, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id models.ItemID) (bool, error)
}

// ItemReadRepository serves query projections. It never returns aggregates.
type ItemReadRepository interface {
	// FindByID returns nil, nil when no item exists for id.
	FindByID(ctx context.Context, id models.ItemID) (*readmodels.ItemDetail, error)

	// FindAll lists every item, newest first.
	FindAll(ctx context.Context) ([]readmodels.ItemListEntry, error)

	// FindByCategory lists the items of one category, newest first.
	FindByCategory(ctx context.Context, category models.Category) ([]readmodels.ItemListEntry, error)
}
