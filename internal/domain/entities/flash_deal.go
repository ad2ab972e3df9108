package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashDeal is a time-boxed surprise-basket post. BasketCount is decremented
// atomically on every paid reservation and is not clamped at zero.
type FlashDeal struct {
	ID            string          `json:"id"`
	CompanyID     string          `json:"company_id"`
	CompanyName   string          `json:"company_name"`
	BasketType    string          `json:"basket_type"`
	Price         decimal.Decimal `json:"price"`
	PickupStart   time.Time       `json:"pickup_start"`
	PickupEnd     time.Time       `json:"pickup_end"`
	PickupAddress string          `json:"pickup_address"`
	BasketCount   int64           `json:"basket_count"`
}

type ReservationStatus string

const ReservationStatusConfirmed ReservationStatus = "confirmed"

type Reservation struct {
	ID                 string            `json:"id"`
	BuyerID            string            `json:"buyer_id"`
	PostID             string            `json:"post_id"`
	CompanyID          string            `json:"company_id"`
	CompanyName        string            `json:"company_name"`
	BasketType         string            `json:"basket_type"`
	Price              decimal.Decimal   `json:"price"`
	Quantity           int64             `json:"quantity"`
	PickupStart        time.Time         `json:"pickup_start"`
	PickupEnd          time.Time         `json:"pickup_end"`
	PickupAddress      string            `json:"pickup_address"`
	ValidationCode     string            `json:"validation_code"`
	IsValidated        bool              `json:"is_validated"`
	Status             ReservationStatus `json:"status"`
	PaymentReferenceID string            `json:"payment_reference_id"`
	CreatedAt          time.Time         `json:"created_at"`
}

// ReservationSettlement is the atomic write set for a paid flash deal.
type ReservationSettlement struct {
	Reservation      Reservation
	PendingPaymentID string
}
