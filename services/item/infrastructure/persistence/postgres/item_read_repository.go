package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/wardrobe/pkg/database"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/postgres/db"
)

// ItemReadRepository implements repositories.ItemReadRepository against PostgreSQL.
// It maps rows straight to projections without building aggregates.
type ItemReadRepository struct {
	db *database.Database
}

// NewItemReadRepository returns an ItemReadRepository backed by the given database.
func NewItemReadRepository(database *database.Database) *ItemReadRepository {
	return &ItemReadRepository{db: database}
}

// FindByID returns the detail projection, or nil, nil when the row is absent.
func (r *ItemReadRepository) FindByID(ctx context.Context, id models.ItemID) (*readmodels.ItemDetail, error) {
	row, err := db.New(r.db.DB()).GetItemByID(ctx, id.Value())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, itemdomain.Database(fmt.Errorf("query item: %w", err))
	}
	return rowToDetail(row), nil
}

// FindAll lists every item, newest first.
func (r *ItemReadRepository) FindAll(ctx context.Context) ([]readmodels.ItemListEntry, error) {
	rows, err := db.New(r.db.DB()).ListItems(ctx)
	if err != nil {
		return nil, itemdomain.Database(fmt.Errorf("list items: %w", err))
	}
	entries := make([]readmodels.ItemListEntry, len(rows))
	for i, row := range rows {
		entries[i] = listEntry(row.ID, row.Name, row.Category, row.Color, row.Brand)
	}
	return entries, nil
}

// FindByCategory lists the items in category, newest first.
func (r *ItemReadRepository) FindByCategory(ctx context.Context, category models.Category) ([]readmodels.ItemListEntry, error) {
	rows, err := db.New(r.db.DB()).ListItemsByCategory(ctx, category.Value())
	if err != nil {
		return nil, itemdomain.Database(fmt.Errorf("list items by category: %w", err))
	}
	entries := make([]readmodels.ItemListEntry, len(rows))
	for i, row := range rows {
		entries[i] = listEntry(row.ID, row.Name, row.Category, row.Color, row.Brand)
	}
	return entries, nil
}
