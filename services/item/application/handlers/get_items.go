package handlers

import (
	"net/http"

	"github.com/ghuser/orcamento/pkg/errhttp"
	"github.com/ghuser/orcamento/pkg/httpx"
	appsvcs "github.com/ghuser/orcamento/services/item/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists every item.
//
//	@Summary		List items
//	@Description	Returns every item on the list; an empty list is []
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	httpx.ErrorBody
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err, errhttp.Fallback{Status: http.StatusInternalServerError, Message: "Error fetching items"})
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
