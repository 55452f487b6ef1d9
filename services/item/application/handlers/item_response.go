package handlers

import (
	"github.com/google/uuid"

	"github.com/ghuser/orcamento/services/item/domain/models"
)

// ItemResponse is the JSON shape of an item.
type ItemResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Name      string    `json:"name"      example:"Arroz 5kg"`
	Quantity  float64   `json:"quantity"  example:"2"`
	UnitValue float64   `json:"unitValue" example:"24.9"`
} // @name Item

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name.String(),
		Quantity:  item.Quantity,
		UnitValue: item.UnitValue,
	}
}
