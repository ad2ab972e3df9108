package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const BookingStatusConfirmed BookingStatus = "confirmed"

type Booking struct {
	ID                 string          `json:"id"`
	BuyerID            string          `json:"buyer_id"`
	MerchantID         string          `json:"merchant_id"`
	ServiceID          string          `json:"service_id"`
	ServiceName        string          `json:"service_name"`
	StartTime          time.Time       `json:"start_time"`
	EndTime            time.Time       `json:"end_time"`
	DurationMinutes    int             `json:"duration_minutes"`
	OriginalPrice      decimal.Decimal `json:"original_price"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	PromoCodeID        string          `json:"promo_code_id,omitempty"`
	Status             BookingStatus   `json:"status"`
	PaymentReferenceID string          `json:"payment_reference_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

type BookingSettlement struct {
	Booking          Booking
	PendingPaymentID string
}
