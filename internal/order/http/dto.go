package http

import (
	"time"

	"github.com/inkwellpress/publisher-backend/internal/order"
	"github.com/inkwellpress/publisher-backend/internal/pkg/request"
)

type ItemResponse struct {
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         string         `json:"id"`
	Status     string         `json:"status"`
	TotalCents int64          `json:"total_cents"`
	Items      []ItemResponse `json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]ItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = ItemResponse{
			EventID:        it.EventID,
			EventTitle:     it.EventTitle,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		}
	}

	return OrderResponse{
		ID:         o.ID,
		Status:     string(o.Status),
		TotalCents: o.TotalCents,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

type ItemRequest struct {
	EventID  string `json:"event_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ListOrdersRequest defines query parameters for listing own orders.
type ListOrdersRequest struct {
	request.ListParams
}
