package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
)

var (
	ErrInvalidLineItem = errors.New("invalid line item")
)

type LineItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id" binding:"required"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity" binding:"required"`
	UnitPrice string `json:"unit_price" binding:"required"`
}

type PendingOrderRequest struct {
	SellerID      string            `json:"seller_id" binding:"required"`
	CartID        string            `json:"cart_id"`
	PickupAddress string            `json:"pickup_address"`
	Items         []LineItemRequest `json:"items" binding:"required"`
}

// ResolveItems parses unit prices exactly; a malformed price rejects the whole order.
func (r PendingOrderRequest) ResolveItems() ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		price, err := decimal.NewFromString(strings.TrimSpace(it.UnitPrice))
		if err != nil {
			return nil, ErrInvalidLineItem
		}
		items = append(items, entities.LineItem{
			ProductID: strings.TrimSpace(it.ProductID),
			VariantID: strings.TrimSpace(it.VariantID),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return items, nil
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderStatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type PickupRequest struct {
	PickupCode string `json:"pickup_code" binding:"required"`
}

// OrderCompletedRequest is the upstream completion event posted by internal callers.
type OrderCompletedRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	SellerID   string `json:"seller_id" binding:"required"`
	BuyerID    string `json:"buyer_id"`
	TotalPrice string `json:"total_price" binding:"required"`
}

func (r OrderCompletedRequest) ToEvent() entities.OrderCompletedEvent {
	return entities.OrderCompletedEvent{
		OrderID:    strings.TrimSpace(r.OrderID),
		SellerID:   strings.TrimSpace(r.SellerID),
		BuyerID:    strings.TrimSpace(r.BuyerID),
		TotalPrice: strings.TrimSpace(r.TotalPrice),
	}
}
