package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// DeleteItem removes an item.
//
// Errors: INVALID_ITEM_ID, ITEM_NOT_FOUND, DATABASE_ERROR.
type DeleteItem struct {
	write repositories.ItemWriteRepository
	obs   *telemetry.UseCaseInstruments
}

func NewDeleteItem(write repositories.ItemWriteRepository, obs *telemetry.UseCaseInstruments) *DeleteItem {
	return &DeleteItem{write: write, obs: obs}
}

func (uc *DeleteItem) Execute(ctx context.Context, rawID int64) result.Result[struct{}] {
	return observe(ctx, uc.obs, "DeleteItem", func(ctx context.Context) result.Result[struct{}] {
		id, err := models.NewItemID(rawID)
		if err != nil {
			return result.Err[struct{}](err)
		}

		removed := result.Defer(func(ctx context.Context) (bool, error) {
			return uc.write.Delete(ctx, id)
		})
		return result.AndThenAsync(removed, func(ok bool) result.Async[struct{}] {
			if !ok {
				return result.ErrAsync[struct{}](itemdomain.ItemNotFound(id.Value()))
			}
			return result.OkAsync(struct{}{})
		}).Await(ctx)
	})
}
