// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	"github.com/ghuser/wardrobe/services/item/domain/models"
)

// ValidateItemForSave checks that an aggregate about to be persisted is
// internally consistent. Items built by models.NewItem or ReconstituteItem
// always pass; the check catches zero-value Items and reconstituted rows
// that bypassed validation.
//
// Rules:
//   - every required field holds a value its constructor would accept
//   - timestamps are set and updatedAt is not before createdAt
func ValidateItemForSave(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if _, err := models.NewItemName(item.Name().Value()); err != nil {
		return err
	}
	if _, err := models.NewCategory(item.Category().Value()); err != nil {
		return err
	}
	if _, err := models.NewColor(item.Color().Value()); err != nil {
		return err
	}

	if item.CreatedAt().IsZero() || item.UpdatedAt().IsZero() {
		return fmt.Errorf("item timestamps must be set")
	}
	if item.UpdatedAt().Before(item.CreatedAt()) {
		return fmt.Errorf("updatedAt %s is before createdAt %s", item.UpdatedAt(), item.CreatedAt())
	}

	if item.HasID() {
		if _, err := models.NewItemID(item.ID().Value()); err != nil {
			return err
		}
	}
	return nil
}
