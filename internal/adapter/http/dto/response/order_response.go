package response

import (
	"time"

	"happydeals/internal/domain/entities"
)

type LineItemResponse struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Name      string `json:"name,omitempty"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type PendingOrderResponse struct {
	ID            string             `json:"id"`
	SellerID      string             `json:"seller_id"`
	Items         []LineItemResponse `json:"items"`
	TotalPrice    string             `json:"total_price"`
	Currency      string             `json:"currency"`
	PickupAddress string             `json:"pickup_address,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// OrderResponse never exposes the pickup code; the buyer reads it out at the counter.
type OrderResponse struct {
	ID          string             `json:"id"`
	BuyerID     string             `json:"buyer_id"`
	SellerID    string             `json:"seller_id"`
	Items       []LineItemResponse `json:"items"`
	TotalPrice  string             `json:"total_price"`
	Currency    string             `json:"currency"`
	Status      string             `json:"status"`
	UpdatedAt   time.Time          `json:"updated_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}
	return out
}

func FromPendingOrder(p entities.PendingOrder) PendingOrderResponse {
	return PendingOrderResponse{
		ID:            p.ID,
		SellerID:      p.SellerID,
		Items:         fromLineItems(p.Items),
		TotalPrice:    p.TotalPrice.StringFixed(2),
		Currency:      p.Currency,
		PickupAddress: p.PickupAddress,
		CreatedAt:     p.CreatedAt,
	}
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		BuyerID:     o.BuyerID,
		SellerID:    o.SellerID,
		Items:       fromLineItems(o.Items),
		TotalPrice:  o.TotalPrice.StringFixed(2),
		Currency:    o.Currency,
		Status:      string(o.Status),
		UpdatedAt:   o.UpdatedAt,
		CompletedAt: o.CompletedAt,
	}
}
