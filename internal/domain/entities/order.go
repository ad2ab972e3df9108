package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the order lifecycle after payment.
//
// paid -> preparing -> ready_for_pickup -> completed. Entering completed
// credits the merchant ledger.
type OrderStatus string

const (
	OrderStatusPaid           OrderStatus = "paid"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReadyForPickup OrderStatus = "ready_for_pickup"
	OrderStatusCompleted      OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusPreparing, OrderStatusReadyForPickup, OrderStatusCompleted:
		return true
	}
	return false
}

type LineItem struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PendingOrder is the staging document an order payment points to via metadata.orderId.
type PendingOrder struct {
	ID            string          `json:"id"`
	BuyerID       string          `json:"buyer_id"`
	SellerID      string          `json:"seller_id"`
	CartID        string          `json:"cart_id,omitempty"`
	Items         []LineItem      `json:"items"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Currency      string          `json:"currency"`
	PickupAddress string          `json:"pickup_address"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Order is the durable purchase record. Its id equals the pending order id,
// so at most one order exists per payment.
type Order struct {
	ID                 string          `json:"id"`
	BuyerID            string          `json:"buyer_id"`
	SellerID           string          `json:"seller_id"`
	Items              []LineItem      `json:"items"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	Currency           string          `json:"currency"`
	PickupAddress      string          `json:"pickup_address"`
	Status             OrderStatus     `json:"status"`
	PaymentReferenceID string          `json:"payment_reference_id"`
	PickupCode         string          `json:"pickup_code,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
}

type ProductVariant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int64  `json:"stock"`
}

// Product holds variant stock. The catalog owns every other product
// attribute. Version is the optimistic concurrency token; products created
// without one read as version 0.
type Product struct {
	ID       string           `json:"id"`
	SellerID string           `json:"seller_id"`
	Name     string           `json:"name"`
	Variants []ProductVariant `json:"variants"`
	Version  int64            `json:"version"`
}

// VariantStock is the new stock of one variant, addressed by its position in
// the product's variant list at read time.
type VariantStock struct {
	Index     int
	VariantID string
	Stock     int64
}

// ProductStockUpdate sets the stock of the variants an order touched on one
// product. ReadVersion is the version the product was read at.
type ProductStockUpdate struct {
	ProductID   string
	ReadVersion int64
	Variants    []VariantStock
}

// OrderSettlement is the write set committed atomically when an order is paid.
type OrderSettlement struct {
	Order            Order
	Stock            []ProductStockUpdate
	CartID           string
	PendingPaymentID string
}
