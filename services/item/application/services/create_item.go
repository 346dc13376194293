package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// CreateItem validates input, persists a new item and returns its detail.
//
// Errors: INVALID_ITEM_NAME, INVALID_CATEGORY, INVALID_COLOR, DATABASE_ERROR,
// and ITEM_NOT_FOUND if the new row cannot be read back.
type CreateItem struct {
	write repositories.ItemWriteRepository
	read  repositories.ItemReadRepository
	obs   *telemetry.UseCaseInstruments
}

func NewCreateItem(write repositories.ItemWriteRepository, read repositories.ItemReadRepository, obs *telemetry.UseCaseInstruments) *CreateItem {
	return &CreateItem{write: write, read: read, obs: obs}
}

func (uc *CreateItem) Execute(ctx context.Context, in CreateItemInput) result.Result[*readmodels.ItemDetail] {
	return observe(ctx, uc.obs, "CreateItem", func(ctx context.Context) result.Result[*readmodels.ItemDetail] {
		item, err := models.NewItem(models.CreateItemParams{
			Name:        in.Name,
			Category:    in.Category,
			Color:       in.Color,
			Brand:       in.Brand,
			Description: in.Description,
		})
		if err != nil {
			return result.Err[*readmodels.ItemDetail](err)
		}

		saved := result.Defer(func(ctx context.Context) (*models.Item, error) {
			return uc.write.Save(ctx, item)
		})
		return result.AndThenAsync(saved, func(item *models.Item) result.Async[*readmodels.ItemDetail] {
			return findDetail(uc.read, item.ID())
		}).Await(ctx)
	})
}
