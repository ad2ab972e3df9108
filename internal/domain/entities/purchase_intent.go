package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseType tags which settlement flow a payment belongs to.
//
// It travels through the gateway metadata channel under the "type" key.
type PurchaseType string

const (
	PurchaseTypeOrder     PurchaseType = "order"
	PurchaseTypeFlashDeal PurchaseType = "flash_deal"
	PurchaseTypeBooking   PurchaseType = "booking"
)

func (t PurchaseType) Valid() bool {
	switch t {
	case PurchaseTypeOrder, PurchaseTypeFlashDeal, PurchaseTypeBooking:
		return true
	}
	return false
}

var (
	ErrUnsupportedPurchaseType = errors.New("unsupported purchase type")
	ErrInvalidPurchaseMetadata = errors.New("invalid purchase metadata")
)

// Gateway metadata keys.
const (
	MetaType            = "type"
	MetaUserID          = "userId"
	MetaOrderID         = "orderId"
	MetaCartID          = "cartId"
	MetaPostID          = "postId"
	MetaReservationID   = "reservationId"
	MetaServiceID       = "serviceId"
	MetaServiceName     = "serviceName"
	MetaBookingID       = "bookingId"
	MetaMerchantID      = "merchantId"
	MetaStartTime       = "startTime"
	MetaEndTime         = "endTime"
	MetaDurationMinutes = "durationMinutes"
	MetaOriginalPrice   = "originalPrice"
	MetaDiscountAmount  = "discountAmount"
	MetaPromoCodeID     = "promoCodeId"
)

// PurchaseIntent is the closed set of purchase kinds a payment can settle into.
// Only OrderIntent, FlashDealIntent and BookingIntent implement it.
type PurchaseIntent interface {
	PurchaseType() PurchaseType
	// Metadata flattens the intent into the gateway's string map.
	Metadata() map[string]string
	isPurchaseIntent()
}

type OrderIntent struct {
	UserID  string
	OrderID string
	CartID  string
}

func (OrderIntent) PurchaseType() PurchaseType { return PurchaseTypeOrder }
func (OrderIntent) isPurchaseIntent()          {}

func (i OrderIntent) Metadata() map[string]string {
	md := map[string]string{
		MetaType:    string(PurchaseTypeOrder),
		MetaUserID:  i.UserID,
		MetaOrderID: i.OrderID,
	}
	if i.CartID != "" {
		md[MetaCartID] = i.CartID
	}
	return md
}

type FlashDealIntent struct {
	UserID        string
	PostID        string
	ReservationID string
}

func (FlashDealIntent) PurchaseType() PurchaseType { return PurchaseTypeFlashDeal }
func (FlashDealIntent) isPurchaseIntent()          {}

func (i FlashDealIntent) Metadata() map[string]string {
	return map[string]string{
		MetaType:          string(PurchaseTypeFlashDeal),
		MetaUserID:        i.UserID,
		MetaPostID:        i.PostID,
		MetaReservationID: i.ReservationID,
	}
}

// BookingIntent carries the slot and the price breakdown computed at initiation,
// including any promo-code discount already applied.
type BookingIntent struct {
	UserID          string
	ServiceID       string
	ServiceName     string
	BookingID       string
	MerchantID      string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	OriginalPrice   decimal.Decimal
	DiscountAmount  decimal.Decimal
	PromoCodeID     string
}

func (BookingIntent) PurchaseType() PurchaseType { return PurchaseTypeBooking }
func (BookingIntent) isPurchaseIntent()          {}

func (i BookingIntent) FinalPrice() decimal.Decimal {
	final := i.OriginalPrice.Sub(i.DiscountAmount)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

func (i BookingIntent) Metadata() map[string]string {
	md := map[string]string{
		MetaType:            string(PurchaseTypeBooking),
		MetaUserID:          i.UserID,
		MetaServiceID:       i.ServiceID,
		MetaServiceName:     i.ServiceName,
		MetaBookingID:       i.BookingID,
		MetaMerchantID:      i.MerchantID,
		MetaStartTime:       i.StartTime.UTC().Format(time.RFC3339),
		MetaEndTime:         i.EndTime.UTC().Format(time.RFC3339),
		MetaDurationMinutes: strconv.Itoa(i.DurationMinutes),
		MetaOriginalPrice:   i.OriginalPrice.String(),
		MetaDiscountAmount:  i.DiscountAmount.String(),
	}
	if i.PromoCodeID != "" {
		md[MetaPromoCodeID] = i.PromoCodeID
	}
	return md
}

// ParsePurchaseIntent validates a gateway metadata map and rebuilds the typed intent.
func ParsePurchaseIntent(md map[string]string) (PurchaseIntent, error) {
	typ := PurchaseType(strings.TrimSpace(md[MetaType]))
	switch typ {
	case PurchaseTypeOrder:
		orderID, err := requireMeta(md, MetaOrderID)
		if err != nil {
			return nil, err
		}
		return OrderIntent{
			UserID:  strings.TrimSpace(md[MetaUserID]),
			OrderID: orderID,
			CartID:  strings.TrimSpace(md[MetaCartID]),
		}, nil
	case PurchaseTypeFlashDeal:
		postID, err := requireMeta(md, MetaPostID)
		if err != nil {
			return nil, err
		}
		reservationID, err := requireMeta(md, MetaReservationID)
		if err != nil {
			return nil, err
		}
		return FlashDealIntent{
			UserID:        strings.TrimSpace(md[MetaUserID]),
			PostID:        postID,
			ReservationID: reservationID,
		}, nil
	case PurchaseTypeBooking:
		return parseBookingIntent(md)
	case "":
		return nil, fmt.Errorf("%w: missing type", ErrUnsupportedPurchaseType)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPurchaseType, typ)
	}
}

func parseBookingIntent(md map[string]string) (PurchaseIntent, error) {
	intent := BookingIntent{
		UserID:      strings.TrimSpace(md[MetaUserID]),
		ServiceName: strings.TrimSpace(md[MetaServiceName]),
		MerchantID:  strings.TrimSpace(md[MetaMerchantID]),
		PromoCodeID: strings.TrimSpace(md[MetaPromoCodeID]),
	}
	var err error
	if intent.ServiceID, err = requireMeta(md, MetaServiceID); err != nil {
		return nil, err
	}
	if intent.BookingID, err = requireMeta(md, MetaBookingID); err != nil {
		return nil, err
	}
	if intent.StartTime, err = parseMetaTime(md, MetaStartTime); err != nil {
		return nil, err
	}
	if intent.EndTime, err = parseMetaTime(md, MetaEndTime); err != nil {
		return nil, err
	}
	if !intent.EndTime.After(intent.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidPurchaseMetadata)
	}
	if raw := strings.TrimSpace(md[MetaDurationMinutes]); raw != "" {
		intent.DurationMinutes, err = strconv.Atoi(raw)
		if err != nil || intent.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: invalid %s", ErrInvalidPurchaseMetadata, MetaDurationMinutes)
		}
	} else {
		intent.DurationMinutes = int(intent.EndTime.Sub(intent.StartTime).Minutes())
	}
	if intent.OriginalPrice, err = parseMetaDecimal(md, MetaOriginalPrice, true); err != nil {
		return nil, err
	}
	if intent.DiscountAmount, err = parseMetaDecimal(md, MetaDiscountAmount, false); err != nil {
		return nil, err
	}
	return intent, nil
}

func requireMeta(md map[string]string, key string) (string, error) {
	v := strings.TrimSpace(md[key])
	if v == "" {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidPurchaseMetadata, key)
	}
	return v, nil
}

func parseMetaTime(md map[string]string, key string) (time.Time, error) {
	raw, err := requireMeta(md, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s", ErrInvalidPurchaseMetadata, key)
	}
	return t.UTC(), nil
}

func parseMetaDecimal(md map[string]string, key string, required bool) (decimal.Decimal, error) {
	raw := strings.TrimSpace(md[key])
	if raw == "" {
		if required {
			return decimal.Zero, fmt.Errorf("%w: missing %s", ErrInvalidPurchaseMetadata, key)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: invalid %s", ErrInvalidPurchaseMetadata, key)
	}
	return d, nil
}

// EncodeMetadata is the only place an intent becomes a flat string map.
func EncodeMetadata(intent PurchaseIntent) map[string]string {
	if intent == nil {
		return map[string]string{}
	}
	return intent.Metadata()
}
