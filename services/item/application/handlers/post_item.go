package handlers

import (
	"net/http"

	"github.com/ghuser/orcamento/pkg/errhttp"
	"github.com/ghuser/orcamento/pkg/httpx"
	pkgvalidator "github.com/ghuser/orcamento/pkg/validator"
	appsvcs "github.com/ghuser/orcamento/services/item/application/services"
)

const createFailedMessage = "Error creating item"

// CreateItemRequest is the request body for POST /items.
// Quantity and unit value are pointers so a missing field is told apart from 0.
type CreateItemRequest struct {
	Name      string   `json:"name"      validate:"required"       example:"Arroz 5kg"`
	Quantity  *float64 `json:"quantity"  validate:"required,gte=0" example:"2"`
	UnitValue *float64 `json:"unitValue" validate:"required,gte=0" example:"24.9"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Validates and stores a new shopping list item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorBody
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r, createFailedMessage)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, *req.Quantity, *req.UnitValue)
	if err != nil {
		errhttp.WriteError(w, err, errhttp.Fallback{Status: http.StatusBadRequest, Message: createFailedMessage})
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
