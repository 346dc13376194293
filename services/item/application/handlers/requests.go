package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/services/item/domain/models"
)

const msgInvalidID = "Invalid id: must be a positive integer"

var errNotStringOrNull = errors.New("must be a string or null")

// CreateItemRequest is the request body for POST /api/items. Presence is
// checked here; trimming, length and category rules belong to the domain.
type CreateItemRequest struct {
	Name        *string `json:"name"        validate:"required" example:"White T-Shirt"`
	Category    *string `json:"category"    validate:"required" example:"tops"`
	Color       *string `json:"color"       validate:"required" example:"white"`
	Brand       *string `json:"brand"       example:"Uniqlo"`
	Description *string `json:"description" example:"Plain crew neck"`
} // @name CreateItemRequest

// UpdateItemRequest is the request body for PUT /api/items/{id}. Omitted
// fields are left unchanged; brand and description accept null to clear them.
type UpdateItemRequest struct {
	Name        *string        `json:"name"        example:"Renamed"`
	Category    *string        `json:"category"    example:"tops"`
	Color       *string        `json:"color"       example:"navy"`
	Brand       OptionalString `json:"brand"       swaggertype:"string" example:"Uniqlo"`
	Description OptionalString `json:"description" swaggertype:"string" example:"Plain crew neck"`
} // @name UpdateItemRequest

// OptionalString is a JSON string field that remembers whether it was
// present in the document and whether it was null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errNotStringOrNull
	}
	o.Value = &s
	return nil
}

// MessageResponse is returned by DELETE /api/items/{id}.
type MessageResponse struct {
	Message string `json:"message" example:"Item deleted successfully"`
} // @name MessageResponse

// CategoryResponse is one entry of GET /api/categories.
type CategoryResponse struct {
	Value string `json:"value" example:"tops"`
	Label string `json:"label" example:"トップス"`
} // @name CategoryResponse

// parseItemID reads the {id} URL parameter and writes a 400 when it is not a
// positive integer.
func parseItemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := models.ParseItemID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id.Value(), true
}
