package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	appsvcs "github.com/ghuser/wardrobe/services/item/application/services"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// GetItemHandler handles GET /api/items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

func NewGetItemHandler(svc *appsvcs.Services, log logger.Logger) *GetItemHandler {
	return &GetItemHandler{svc: svc, log: log}
}

// Execute returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		int	true	"Item ID"
//	@Success	200	{object}	httpx.SuccessResponse{data=readmodels.ItemDetail}
//	@Failure	400	{object}	httpx.ErrorResponse
//	@Failure	404	{object}	httpx.ErrorResponse
//	@Failure	500	{object}	httpx.ErrorResponse
//	@Router		/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := parseItemID(w, r)
	if !ok {
		return
	}

	h.svc.GetItem.Execute(r.Context(), id).Match(
		func(item *readmodels.ItemDetail) { httpx.Success(w, http.StatusOK, item) },
		func(err error) { errhttp.WriteError(w, r, h.log, err) },
	)
}
