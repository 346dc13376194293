package postgres

import (
	"database/sql"
	"time"

	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/infrastructure/persistence/postgres/db"
)

// rowToItem maps a db.ItemItem to a domain models.Item.
func rowToItem(row db.ItemItem) *models.Item {
	return models.ReconstituteItem(models.ReconstituteItemParams{
		ID:          models.ReconstituteItemID(row.ID),
		Name:        models.ReconstituteItemName(row.Name),
		Category:    models.ReconstituteCategory(row.Category),
		Color:       models.ReconstituteColor(row.Color),
		Brand:       stringPtr(row.Brand),
		Description: stringPtr(row.Description),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	})
}

// rowToDetail maps a db.ItemItem to the detail projection.
func rowToDetail(row db.ItemItem) *readmodels.ItemDetail {
	return &readmodels.ItemDetail{
		ID:          row.ID,
		Name:        row.Name,
		Category:    row.Category,
		Color:       row.Color,
		Brand:       stringPtr(row.Brand),
		Description: stringPtr(row.Description),
		CreatedAt:   readmodels.FormatTime(row.CreatedAt),
		UpdatedAt:   readmodels.FormatTime(row.UpdatedAt),
	}
}

func listEntry(id int64, name, category, color string, brand sql.NullString) readmodels.ItemListEntry {
	return readmodels.ItemListEntry{
		ID:       id,
		Name:     name,
		Category: category,
		Color:    color,
		Brand:    stringPtr(brand),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
