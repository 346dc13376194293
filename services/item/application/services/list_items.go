package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	"github.com/ghuser/wardrobe/services/item/domain/models"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
	"github.com/ghuser/wardrobe/services/item/domain/repositories"
)

// ListItems returns every item, newest first.
//
// Errors: DATABASE_ERROR.
type ListItems struct {
	read repositories.ItemReadRepository
	obs  *telemetry.UseCaseInstruments
}

func NewListItems(read repositories.ItemReadRepository, obs *telemetry.UseCaseInstruments) *ListItems {
	return &ListItems{read: read, obs: obs}
}

func (uc *ListItems) Execute(ctx context.Context) result.Result[[]readmodels.ItemListEntry] {
	return observe(ctx, uc.obs, "ListItems", func(ctx context.Context) result.Result[[]readmodels.ItemListEntry] {
		return result.Defer(uc.read.FindAll).Await(ctx)
	})
}

// ListItemsByCategory returns the items of one category, newest first. An
// empty category is a success with an empty list.
//
// Errors: INVALID_CATEGORY, DATABASE_ERROR.
type ListItemsByCategory struct {
	read repositories.ItemReadRepository
	obs  *telemetry.UseCaseInstruments
}

func NewListItemsByCategory(read repositories.ItemReadRepository, obs *telemetry.UseCaseInstruments) *ListItemsByCategory {
	return &ListItemsByCategory{read: read, obs: obs}
}

func (uc *ListItemsByCategory) Execute(ctx context.Context, rawCategory string) result.Result[[]readmodels.ItemListEntry] {
	return observe(ctx, uc.obs, "ListItemsByCategory", func(ctx context.Context) result.Result[[]readmodels.ItemListEntry] {
		category, err := models.NewCategory(rawCategory)
		if err != nil {
			return result.Err[[]readmodels.ItemListEntry](err)
		}
		return result.Defer(func(ctx context.Context) ([]readmodels.ItemListEntry, error) {
			return uc.read.FindByCategory(ctx, category)
		}).Await(ctx)
	})
}
