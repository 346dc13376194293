package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/errhttp"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/result"
	appsvcs "github.com/ghuser/wardrobe/services/item/application/services"
	"github.com/ghuser/wardrobe/services/item/domain/readmodels"
)

// GetItemsHandler handles GET /api/items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, log logger.Logger) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, log: log}
}

// Execute lists items, newest first, optionally filtered by category.
//
//	@Summary		List items
//	@Description	Lists all items, or only those of one category
//	@Tags			items
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"	Enums(outer, tops, bottoms, shoes, accessories)
//	@Success		200			{object}	httpx.SuccessResponse{data=[]readmodels.ItemListEntry}
//	@Failure		400			{object}	httpx.ErrorResponse
//	@Failure		500			{object}	httpx.ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var res result.Result[[]readmodels.ItemListEntry]
	if category := r.URL.Query().Get("category"); category != "" {
		res = h.svc.ListItemsByCategory.Execute(r.Context(), category)
	} else {
		res = h.svc.ListItems.Execute(r.Context())
	}

	res.Match(
		func(items []readmodels.ItemListEntry) {
			if items == nil {
				items = []readmodels.ItemListEntry{}
			}
			httpx.Success(w, http.StatusOK, items)
		},
		func(err error) { errhttp.WriteError(w, r, h.log, err) },
	)
}
