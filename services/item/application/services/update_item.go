package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// UpdateItem applies a partial update and returns the new detail.
// Present fields are applied in the order name, category, color, brand,
// description; the first invalid one aborts the update before anything is saved.
// An update with no fields still saves, refreshing updatedAt.
//
// Errors: INVALID_ITEM_ID, ITEM_NOT_FOUND, INVALID_ITEM_NAME,
// INVALID_CATEGORY, INVALID_COLOR, DATABASE_ERROR.
type UpdateItem struct {
	write repositories.ItemWriteRepository
	read  repositories.ItemReadRepository
	obs   *telemetry.UseCaseInstruments
}

func NewUpdateItem(write repositories.ItemWriteRepository, read repositories.ItemReadRepository, obs *telemetry.UseCaseInstruments) *UpdateItem {
	return &UpdateItem{write: write, read: read, obs: obs}
}

func (uc *UpdateItem) Execute(ctx context.Context, in UpdateItemInput) result.Result[*readmodels.ItemDetail] {
	return observe(ctx, uc.obs, "UpdateItem", func(ctx context.Context) result.Result[*readmodels.ItemDetail] {
		id, err := models.NewItemID(in.ID)
		if err != nil {
			return result.Err[*readmodels.ItemDetail](err)
		}

		loaded := result.Defer(func(ctx context.Context) (*models.Item, error) {
			return uc.write.FindByID(ctx, id)
		})
		patched := result.AndThenAsync(loaded, func(item *models.Item) result.Async[*models.Item] {
			if item == nil {
				return result.ErrAsync[*models.Item](itemdomain.ItemNotFound(id.Value()))
			}
			return result.Lift(applyUpdate(item, in))
		})
		saved := result.AndThenAsync(patched, func(item *models.Item) result.Async[*models.Item] {
			return result.Defer(func(ctx context.Context) (*models.Item, error) {
				return uc.write.Save(ctx, item)
			})
		})
		return result.AndThenAsync(saved, func(item *models.Item) result.Async[*readmodels.ItemDetail] {
			return findDetail(uc.read, item.ID())
		}).Await(ctx)
	})
}

func applyUpdate(item *models.Item, in UpdateItemInput) result.Result[*models.Item] {
	if in.Empty() {
		item.Touch()
		return result.Ok(item)
	}
	if in.Name != nil {
		if err := item.UpdateName(*in.Name); err != nil {
			return result.Err[*models.Item](err)
		}
	}
	if in.Category != nil {
		if err := item.UpdateCategory(*in.Category); err != nil {
			return result.Err[*models.Item](err)
		}
	}
	if in.Color != nil {
		if err := item.UpdateColor(*in.Color); err != nil {
			return result.Err[*models.Item](err)
		}
	}
	if in.Brand.Set {
		item.UpdateBrand(in.Brand.Value)
	}
	if in.Description.Set {
		item.UpdateDescription(in.Description.Value)
	}
	return result.Ok(item)
}
