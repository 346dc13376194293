package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// findDetail loads the detail projection for id; an absent row becomes
// ITEM_NOT_FOUND.
func findDetail(read repositories.ItemReadRepository, id models.ItemID) result.Async[*readmodels.ItemDetail] {
	found := result.Defer(func(ctx context.Context) (*readmodels.ItemDetail, error) {
		return read.FindByID(ctx, id)
	})
	return result.AndThenAsync(found, func(d *readmodels.ItemDetail) result.Async[*readmodels.ItemDetail] {
		if d == nil {
			return result.ErrAsync[*readmodels.ItemDetail](itemdomain.ItemNotFound(id.Value()))
		}
		return result.OkAsync(d)
	})
}
