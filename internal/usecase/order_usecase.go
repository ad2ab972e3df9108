package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var (
	ErrInvalidPendingOrder    = errors.New("pending order needs a seller and at least one valid line item")
	ErrInvalidOrderStatus     = errors.New("invalid order status")
	ErrInvalidPickupCode      = errors.New("pickup code does not match")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderPermissionDenied  = errors.New("caller is not allowed to change this order")
	ErrOrderAlreadyCompleted  = errors.New("order is already completed")
	ErrOrderNotReadyForPickup = errors.New("order is not ready for pickup")
	ErrOrderStatusConflict    = errors.New("order status changed concurrently")
)

const pickupCodeLength = 6

type CreatePendingOrderCommand struct {
	BuyerID       string
	SellerID      string
	CartID        string
	PickupAddress string
	Items         []entities.LineItem
}

// IOrderUseCase stages orders before payment and drives them through pickup.
type IOrderUseCase interface {
	CreatePendingOrder(ctx context.Context, cmd CreatePendingOrderCommand) (entities.PendingOrder, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, requesterID string) (entities.Order, error)
	ConfirmPickup(ctx context.Context, orderID, code, requesterID string) (entities.Order, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	users    interfaces.IUserRepository
	ledger   IMerchantLedgerUseCase
	notify   notifier
	currency string
	newID    func() string
	newCode  func() (string, error)
	now      func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, users interfaces.IUserRepository, ledger IMerchantLedgerUseCase, publisher interfaces.INotificationPublisher, currency string) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		users:    users,
		ledger:   ledger,
		notify:   notifier{publisher: publisher, area: "order"},
		currency: currency,
		newID:    uuid.NewString,
		newCode:  func() (string, error) { return generateCode(pickupCodeLength) },
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) CreatePendingOrder(ctx context.Context, cmd CreatePendingOrderCommand) (entities.PendingOrder, error) {
	buyerID := strings.TrimSpace(cmd.BuyerID)
	if buyerID == "" {
		return entities.PendingOrder{}, ErrUnauthenticated
	}
	sellerID := strings.TrimSpace(cmd.SellerID)
	if sellerID == "" || len(cmd.Items) == 0 {
		return entities.PendingOrder{}, ErrInvalidPendingOrder
	}

	total := decimal.Zero
	for _, item := range cmd.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			log.Printf("[order][usecase] invalid line item buyer_id=%s product_id=%s qty=%d", buyerID, item.ProductID, item.Quantity)
			return entities.PendingOrder{}, ErrInvalidPendingOrder
		}
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
	}
	if !total.IsPositive() {
		return entities.PendingOrder{}, ErrInvalidPendingOrder
	}

	po := entities.PendingOrder{
		ID:            u.newID(),
		BuyerID:       buyerID,
		SellerID:      sellerID,
		CartID:        strings.TrimSpace(cmd.CartID),
		Items:         cmd.Items,
		TotalPrice:    total.Round(2),
		Currency:      u.currency,
		PickupAddress: strings.TrimSpace(cmd.PickupAddress),
		CreatedAt:     u.now(),
	}
	if err := u.orders.CreatePendingOrder(ctx, po); err != nil {
		log.Printf("[order][usecase] create pending order failed buyer_id=%s err=%v", buyerID, err)
		return entities.PendingOrder{}, err
	}
	log.Printf("[order][usecase] pending order created id=%s buyer_id=%s seller_id=%s total=%s", po.ID, buyerID, sellerID, po.TotalPrice)
	return po, nil
}

// UpdateStatus is the merchant-side transition. Re-sending completed for a
// completed order re-runs the ledger credit, which is idempotent.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, requesterID string) (entities.Order, error) {
	log.Printf("[order][usecase] update status start order_id=%s status=%s requester=%s", orderID, status, requesterID)
	if strings.TrimSpace(requesterID) == "" {
		return entities.Order{}, ErrUnauthenticated
	}
	if !status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.SellerID != requesterID {
		return entities.Order{}, ErrOrderPermissionDenied
	}

	if order.Status == entities.OrderStatusCompleted {
		if status != entities.OrderStatusCompleted {
			return entities.Order{}, ErrOrderAlreadyCompleted
		}
		log.Printf("[order][usecase] order already completed; re-running ledger credit order_id=%s", order.ID)
		return order, u.creditLedger(ctx, order)
	}

	previous := order.Status
	now := u.now()
	order.Status = status
	order.UpdatedAt = now
	switch status {
	case entities.OrderStatusReadyForPickup:
		if order.PickupCode == "" {
			code, err := u.newCode()
			if err != nil {
				return entities.Order{}, fmt.Errorf("generate pickup code: %w", err)
			}
			order.PickupCode = code
		}
	case entities.OrderStatusCompleted:
		order.CompletedAt = &now
	}

	if err := u.save(ctx, order, previous); err != nil {
		return entities.Order{}, err
	}
	u.notifyBuyer(ctx, order)
	if status == entities.OrderStatusCompleted {
		return order, u.creditLedger(ctx, order)
	}
	return order, nil
}

// ConfirmPickup is the buyer-side completion with the code shown at pickup.
func (u *OrderUseCase) ConfirmPickup(ctx context.Context, orderID, code, requesterID string) (entities.Order, error) {
	log.Printf("[order][usecase] confirm pickup start order_id=%s requester=%s", orderID, requesterID)
	if strings.TrimSpace(requesterID) == "" {
		return entities.Order{}, ErrUnauthenticated
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.BuyerID != requesterID {
		return entities.Order{}, ErrOrderPermissionDenied
	}
	switch order.Status {
	case entities.OrderStatusCompleted:
		return entities.Order{}, ErrOrderAlreadyCompleted
	case entities.OrderStatusReadyForPickup:
	default:
		return entities.Order{}, ErrOrderNotReadyForPickup
	}
	if order.PickupCode == "" || !strings.EqualFold(strings.TrimSpace(code), order.PickupCode) {
		log.Printf("[order][usecase] pickup code mismatch order_id=%s", order.ID)
		return entities.Order{}, ErrInvalidPickupCode
	}

	now := u.now()
	order.Status = entities.OrderStatusCompleted
	order.UpdatedAt = now
	order.CompletedAt = &now
	if err := u.save(ctx, order, entities.OrderStatusReadyForPickup); err != nil {
		return entities.Order{}, err
	}
	u.notifyBuyer(ctx, order)
	return order, u.creditLedger(ctx, order)
}

func (u *OrderUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	order, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[order][usecase] get order failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *OrderUseCase) save(ctx context.Context, order entities.Order, expected entities.OrderStatus) error {
	err := u.orders.UpdateOrder(ctx, order, expected)
	if errors.Is(err, interfaces.ErrPreconditionFailed) {
		log.Printf("[order][usecase] status conflict order_id=%s expected=%s", order.ID, expected)
		return ErrOrderStatusConflict
	}
	if err != nil {
		log.Printf("[order][usecase] update order failed order_id=%s err=%v", order.ID, err)
		return err
	}
	log.Printf("[order][usecase] status updated order_id=%s from=%s to=%s", order.ID, expected, order.Status)
	return nil
}

func (u *OrderUseCase) creditLedger(ctx context.Context, order entities.Order) error {
	if u.ledger == nil {
		return nil
	}
	_, err := u.ledger.OnOrderCompleted(ctx, entities.OrderCompletedEvent{
		OrderID:    order.ID,
		SellerID:   order.SellerID,
		BuyerID:    order.BuyerID,
		TotalPrice: order.TotalPrice.String(),
	})
	if errors.Is(err, ErrLedgerAlreadyCredited) {
		return nil
	}
	if err != nil {
		log.Printf("[order][usecase] ledger credit failed order_id=%s err=%v", order.ID, err)
	}
	return err
}

func (u *OrderUseCase) notifyBuyer(ctx context.Context, order entities.Order) {
	buyer := lookupUser(ctx, u.users, "order", order.BuyerID)
	data := map[string]string{"orderId": order.ID, "status": string(order.Status)}
	body := fmt.Sprintf("Your order is now %s.", strings.ReplaceAll(string(order.Status), "_", " "))
	if order.Status == entities.OrderStatusReadyForPickup {
		body = fmt.Sprintf("Your order is ready. Pickup code: %s", order.PickupCode)
	}
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateOrderStatusChanged, RecipientID: buyer.ID,
		Title: "Order update", Body: body, Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationPush, Template: TemplateOrderStatusChanged, RecipientID: buyer.ID, DeviceToken: buyer.DeviceToken,
		Title: "Order update", Body: body, Data: data,
	})
}
