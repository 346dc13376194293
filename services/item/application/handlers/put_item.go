package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	pkgvalidator "github.com/ghuser/wardrobe/pkg/validator"
	appsvcs "github.com/ghuser/wardrobe/services/item/application/services"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// PutItemHandler handles PUT /api/items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewPutItemHandler(svc *appsvcs.Services, log logger.Logger) *PutItemHandler {
	return &PutItemHandler{svc: svc, log: log}
}

// Execute partially updates an item.
//
//	@Summary		Update item
//	@Description	Applies the fields present in the body; null clears brand or description
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	httpx.SuccessResponse{data=readmodels.ItemDetail}
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		413		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}
	req, ok := pkgvalidator.DecodeJSON[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	h.svc.UpdateItem.Execute(r.Context(), appsvcs.UpdateItemInput{
		ID:          id,
		Name:        req.Name,
		Category:    req.Category,
		Color:       req.Color,
		Brand:       appsvcs.Nullable{Set: req.Brand.Set, Value: req.Brand.Value},
		Description: appsvcs.Nullable{Set: req.Description.Set, Value: req.Description.Value},
	}).Match(
		func(item *readmodels.ItemDetail) { httpx.Success(w, http.StatusOK, item) },
		func(err error) { errhttp.WriteError(w, r, h.log, err) },
	)
}
