package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var (
	ErrInvalidAmount        = errors.New("amount must be a positive number of minor units")
	ErrInvalidClientKind    = errors.New("client kind must be web or native")
	ErrMissingSuccessURL    = errors.New("success and cancel urls are required for web checkout")
	ErrAmountMismatch       = errors.New("amount does not match the purchase total")
	ErrPendingOrderNotFound = errors.New("pending order not found")
	ErrPendingOrderNotOwned = errors.New("pending order belongs to another user")
	ErrInvalidSessionID     = errors.New("invalid checkout session id")
)

const checkoutSessionIDParam = "session_id={CHECKOUT_SESSION_ID}"

type InitiatePaymentCommand struct {
	PurchaseType     entities.PurchaseType
	AmountMinorUnits int64
	Metadata         map[string]string
	ClientKind       entities.ClientKind
	SuccessURL       string
	CancelURL        string
	OwnerUserID      string
}

type InitiatePaymentResult struct {
	SessionOrIntentID string
	RedirectURL       string
	ClientSecret      string
}

// IPaymentUseCase starts payments for every purchase type.
//
// The payment is staged as a PendingPayment keyed by the gateway id; the
// webhook dispatcher settles it once the gateway reports success.
type IPaymentUseCase interface {
	InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error)
	GetCheckoutStatus(ctx context.Context, sessionID string) (bool, error)
}

type PaymentUseCase struct {
	gateway         interfaces.IPaymentGateway
	users           interfaces.IUserRepository
	pendingPayments interfaces.IPendingPaymentRepository
	orders          interfaces.IOrderRepository
	currency        string
	maxAge          time.Duration
	now             func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway, users interfaces.IUserRepository, pendingPayments interfaces.IPendingPaymentRepository, orders interfaces.IOrderRepository, currency string, maxAge time.Duration) *PaymentUseCase {
	return &PaymentUseCase{
		gateway:         gateway,
		users:           users,
		pendingPayments: pendingPayments,
		orders:          orders,
		currency:        strings.ToLower(currency),
		maxAge:          maxAge,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentUseCase) InitiatePayment(ctx context.Context, cmd InitiatePaymentCommand) (InitiatePaymentResult, error) {
	log.Printf("[payment][usecase] initiate start user_id=%s type=%s amount=%d client=%s", cmd.OwnerUserID, cmd.PurchaseType, cmd.AmountMinorUnits, cmd.ClientKind)
	ownerID := strings.TrimSpace(cmd.OwnerUserID)
	if ownerID == "" {
		return InitiatePaymentResult{}, ErrUnauthenticated
	}
	if !cmd.PurchaseType.Valid() {
		log.Printf("[payment][usecase] unsupported purchase type user_id=%s type=%q", ownerID, cmd.PurchaseType)
		return InitiatePaymentResult{}, fmt.Errorf("%w: %q", ErrUnsupportedPurchaseType, cmd.PurchaseType)
	}
	if cmd.AmountMinorUnits <= 0 {
		return InitiatePaymentResult{}, ErrInvalidAmount
	}
	clientKind := cmd.ClientKind
	if clientKind == "" {
		clientKind = entities.ClientKindWeb
	}
	if clientKind != entities.ClientKindWeb && clientKind != entities.ClientKindNative {
		return InitiatePaymentResult{}, ErrInvalidClientKind
	}
	if clientKind == entities.ClientKindWeb && (strings.TrimSpace(cmd.SuccessURL) == "" || strings.TrimSpace(cmd.CancelURL) == "") {
		return InitiatePaymentResult{}, ErrMissingSuccessURL
	}

	intent, err := entities.ParsePurchaseIntent(prepareMetadata(cmd.PurchaseType, ownerID, cmd.Metadata))
	if err != nil {
		log.Printf("[payment][usecase] invalid metadata user_id=%s type=%s err=%v", ownerID, cmd.PurchaseType, err)
		return InitiatePaymentResult{}, err
	}
	intent, err = u.checkIntent(ctx, intent, ownerID, cmd.AmountMinorUnits)
	if err != nil {
		return InitiatePaymentResult{}, err
	}

	customerID, err := u.ensureCustomer(ctx, ownerID)
	if err != nil {
		log.Printf("[payment][usecase] customer setup failed user_id=%s err=%v", ownerID, err)
		return InitiatePaymentResult{}, err
	}

	metadata := entities.EncodeMetadata(intent)
	var session entities.GatewaySession
	if clientKind == entities.ClientKindWeb {
		session, err = u.gateway.CreateCheckoutSession(ctx, entities.CheckoutSessionRequest{
			CustomerID:       customerID,
			AmountMinorUnits: cmd.AmountMinorUnits,
			Currency:         u.currency,
			ProductName:      productName(intent),
			SuccessURL:       withCheckoutSessionID(cmd.SuccessURL),
			CancelURL:        strings.TrimSpace(cmd.CancelURL),
			Metadata:         metadata,
		})
	} else {
		session, err = u.gateway.CreatePaymentIntent(ctx, entities.PaymentIntentRequest{
			CustomerID:       customerID,
			AmountMinorUnits: cmd.AmountMinorUnits,
			Currency:         u.currency,
			Metadata:         metadata,
		})
	}
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed user_id=%s type=%s err=%v", ownerID, cmd.PurchaseType, err)
		return InitiatePaymentResult{}, err
	}

	now := u.now()
	pending := entities.PendingPayment{
		ID:               session.ID,
		PurchaseType:     intent.PurchaseType(),
		OwnerUserID:      ownerID,
		AmountMinorUnits: cmd.AmountMinorUnits,
		Currency:         u.currency,
		Metadata:         metadata,
		Status:           entities.PendingPaymentStatusPending,
		CreatedAt:        now,
		ExpiresAt:        now.Add(u.maxAge),
	}
	if err := u.pendingPayments.Create(ctx, pending); err != nil {
		log.Printf("[payment][usecase] pending payment persist failed id=%s err=%v", session.ID, err)
		return InitiatePaymentResult{}, err
	}

	log.Printf("[payment][usecase] initiate success user_id=%s type=%s id=%s", ownerID, pending.PurchaseType, session.ID)
	return InitiatePaymentResult{
		SessionOrIntentID: session.ID,
		RedirectURL:       session.URL,
		ClientSecret:      session.ClientSecret,
	}, nil
}

func (u *PaymentUseCase) GetCheckoutStatus(ctx context.Context, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return false, ErrInvalidSessionID
	}
	paid, err := u.gateway.IsCheckoutSessionPaid(ctx, sessionID)
	if err != nil {
		log.Printf("[payment][usecase] checkout status failed session_id=%s err=%v", sessionID, err)
		return false, err
	}
	return paid, nil
}

// prepareMetadata copies the client metadata, stamps type and owner, and
// allocates the ids the settlement handlers write under. Client supplied
// reservation and booking ids are replaced so a purchase can never target an
// existing record.
func prepareMetadata(purchaseType entities.PurchaseType, ownerID string, in map[string]string) map[string]string {
	md := make(map[string]string, len(in)+2)
	for k, v := range in {
		md[k] = v
	}
	md[entities.MetaType] = string(purchaseType)
	md[entities.MetaUserID] = ownerID
	switch purchaseType {
	case entities.PurchaseTypeFlashDeal:
		md[entities.MetaReservationID] = uuid.NewString()
	case entities.PurchaseTypeBooking:
		md[entities.MetaBookingID] = uuid.NewString()
	}
	return md
}

// checkIntent cross-checks the intent against stored state where the server
// knows the price.
func (u *PaymentUseCase) checkIntent(ctx context.Context, intent entities.PurchaseIntent, ownerID string, amount int64) (entities.PurchaseIntent, error) {
	switch in := intent.(type) {
	case entities.OrderIntent:
		po, err := u.orders.GetPendingOrder(ctx, in.OrderID)
		if err != nil {
			return nil, err
		}
		if po.ID == "" {
			return nil, ErrPendingOrderNotFound
		}
		if po.BuyerID != ownerID {
			return nil, ErrPendingOrderNotOwned
		}
		if entities.ToMinorUnits(po.TotalPrice) != amount {
			log.Printf("[payment][usecase] amount mismatch order_id=%s expected=%d got=%d", po.ID, entities.ToMinorUnits(po.TotalPrice), amount)
			return nil, ErrAmountMismatch
		}
		if in.CartID == "" {
			in.CartID = po.CartID
		}
		return in, nil
	case entities.BookingIntent:
		if entities.ToMinorUnits(in.FinalPrice()) != amount {
			return nil, ErrAmountMismatch
		}
		return in, nil
	}
	return intent, nil
}

func (u *PaymentUseCase) ensureCustomer(ctx context.Context, userID string) (string, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.GatewayCustomerID != "" {
		return user.GatewayCustomerID, nil
	}
	if user.ID == "" {
		user.ID = userID
	}
	customerID, err := u.gateway.CreateCustomer(ctx, user)
	if err != nil {
		return "", err
	}
	if err := u.users.SetGatewayCustomerID(ctx, userID, customerID); err != nil {
		log.Printf("[payment][usecase] persist customer id failed user_id=%s customer_id=%s err=%v", userID, customerID, err)
	}
	return customerID, nil
}

func productName(intent entities.PurchaseIntent) string {
	switch in := intent.(type) {
	case entities.OrderIntent:
		return "Order " + in.OrderID
	case entities.FlashDealIntent:
		return "Flash deal basket"
	case entities.BookingIntent:
		if in.ServiceName != "" {
			return in.ServiceName
		}
		return "Booking"
	}
	return "Happy Deals purchase"
}

func withCheckoutSessionID(successURL string) string {
	successURL = strings.TrimSpace(successURL)
	if strings.Contains(successURL, "{CHECKOUT_SESSION_ID}") {
		return successURL
	}
	sep := "?"
	if strings.Contains(successURL, "?") {
		sep = "&"
	}
	return successURL + sep + checkoutSessionIDParam
}
