package handlers

import (
	"net/http"

	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/services/item/domain/models"
)

var categoryLabels = map[string]string{
	models.CategoryOuter:       "アウター",
	models.CategoryTops:        "トップス",
	models.CategoryBottoms:     "ボトムス",
	models.CategoryShoes:       "シューズ",
	models.CategoryAccessories: "アクセサリー",
}

// GetCategoriesHandler handles GET /api/categories requests.
type GetCategoriesHandler struct{}

func NewGetCategoriesHandler() *GetCategoriesHandler {
	return &GetCategoriesHandler{}
}

// Execute lists the accepted categories with their display labels.
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{object}	httpx.SuccessResponse{data=[]CategoryResponse}
//	@Router		/categories [get]
func (h *GetCategoriesHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	values := models.Categories()
	out := make([]CategoryResponse, 0, len(values))
	for _, v := range values {
		out = append(out, CategoryResponse{Value: v, Label: categoryLabels[v]})
	}
	httpx.Success(w, http.StatusOK, out)
}
