package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orcamento/pkg/errhttp"
	"github.com/ghuser/orcamento/pkg/httpx"
	appsvcs "github.com/ghuser/orcamento/services/item/application/services"
)

// DeleteItemResponse is returned after an item is removed.
type DeleteItemResponse struct {
	Message string       `json:"message" example:"Item deleted successfully"`
	Item    ItemResponse `json:"item"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes the item addressed by the path ID.
//
//	@Summary		Delete item
//	@Description	Removes an item and returns it
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"	format(uuid)
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		400	{object}	httpx.ErrorBody
//	@Failure		404	{object}	httpx.ErrorBody
//	@Failure		500	{object}	httpx.ErrorBody
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Item.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, errhttp.Fallback{Status: http.StatusInternalServerError, Message: "Error deleting item"})
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{
		Message: "Item deleted successfully",
		Item:    toItemResponse(item),
	})
}
