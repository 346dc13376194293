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

// PostItemHandler handles POST /api/items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a wardrobe item and returns its detail
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	httpx.SuccessResponse{data=readmodels.ItemDetail}
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		413		{object}	httpx.ErrorResponse
//	@Failure		500		{object}	httpx.ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	h.svc.CreateItem.Execute(r.Context(), appsvcs.CreateItemInput{
		Name:        *req.Name,
		Category:    *req.Category,
		Color:       *req.Color,
		Brand:       req.Brand,
		Description: req.Description,
	}).Match(
		func(item *readmodels.ItemDetail) { httpx.Success(w, http.StatusCreated, item) },
		func(err error) { errhttp.WriteError(w, r, h.log, err) },
	)
}
