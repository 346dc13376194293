package services

import (
	"context"

	"github.com/ghuser/wardrobe/pkg/result"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	itemdomain "github.com/ghuser/wardrobe/services/item/domain"
)

const instrumentationName = "github.com/ghuser/wardrobe/services/item/application/services"

// observe runs fn inside a span named after the use case and counts the
// execution with outcome "ok" or the error kind. An error outside the item
// taxonomy is wrapped as DATABASE_ERROR so callers only ever see typed failures.
func observe[T any](ctx context.Context, obs *telemetry.UseCaseInstruments, usecase string, fn func(context.Context) result.Result[T]) result.Result[T] {
	ctx, span := obs.Start(ctx, usecase)

	r := fn(ctx)
	if r.IsErr() && itemdomain.KindOf(r.Error()) == "" {
		r = result.Err[T](itemdomain.Database(r.Error()))
	}

	outcome := telemetry.OutcomeOK
	if r.IsErr() {
		outcome = string(itemdomain.KindOf(r.Error()))
	}
	obs.Finish(ctx, span, usecase, outcome, r.Error())
	return r
}
