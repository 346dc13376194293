package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// GetItem returns one item's detail.
//
// Errors: INVALID_ITEM_ID, ITEM_NOT_FOUND, DATABASE_ERROR.
type GetItem struct {
	read repositories.ItemReadRepository
	obs  *telemetry.UseCaseInstruments
}

func NewGetItem(read repositories.ItemReadRepository, obs *telemetry.UseCaseInstruments) *GetItem {
	return &GetItem{read: read, obs: obs}
}

func (uc *GetItem) Execute(ctx context.Context, rawID int64) result.Result[*readmodels.ItemDetail] {
	return observe(ctx, uc.obs, "GetItem", func(ctx context.Context) result.Result[*readmodels.ItemDetail] {
		id, err := models.NewItemID(rawID)
		if err != nil {
			return result.Err[*readmodels.ItemDetail](err)
		}
		return findDetail(uc.read, id).Await(ctx)
	})
}
