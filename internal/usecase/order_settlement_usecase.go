package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var ErrSettlementContention = errors.New("order settlement kept conflicting with concurrent stock updates")

const maxOrderSettlementAttempts = 5

// IOrderSettlementUseCase converts a paid pending order into an order.
type IOrderSettlementUseCase interface {
	SettleOrder(ctx context.Context, intent entities.OrderIntent, event entities.GatewayEvent) (entities.Order, error)
}

type OrderSettlementUseCase struct {
	orders          interfaces.IOrderRepository
	pendingPayments interfaces.IPendingPaymentRepository
	users           interfaces.IUserRepository
	notify          notifier
	now             func() time.Time
}

var _ IOrderSettlementUseCase = (*OrderSettlementUseCase)(nil)

func NewOrderSettlementUseCase(orders interfaces.IOrderRepository, pendingPayments interfaces.IPendingPaymentRepository, users interfaces.IUserRepository, publisher interfaces.INotificationPublisher) *OrderSettlementUseCase {
	return &OrderSettlementUseCase{
		orders:          orders,
		pendingPayments: pendingPayments,
		users:           users,
		notify:          notifier{publisher: publisher, area: "settlement"},
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// SettleOrder creates the order, decrements stock (clamped at zero), clears
// the cart and removes the pending order in one transaction. Stock conflicts
// are retried from a fresh read.
func (u *OrderSettlementUseCase) SettleOrder(ctx context.Context, intent entities.OrderIntent, event entities.GatewayEvent) (entities.Order, error) {
	log.Printf("[settlement][order] start order_id=%s event_id=%s", intent.OrderID, event.ID)
	if intent.OrderID == "" {
		return entities.Order{}, fmt.Errorf("%w: missing %s", ErrInvalidPurchaseMetadata, entities.MetaOrderID)
	}
	pending, err := pendingGuard(ctx, u.pendingPayments, "order", event)
	if err != nil {
		return entities.Order{}, err
	}

	for attempt := 1; attempt <= maxOrderSettlementAttempts; attempt++ {
		po, err := u.orders.GetPendingOrder(ctx, intent.OrderID)
		if err != nil {
			return entities.Order{}, err
		}
		if po.ID == "" {
			log.Printf("[settlement][order] pending order not found order_id=%s", intent.OrderID)
			return entities.Order{}, ErrPendingOrderNotFound
		}

		settlement, err := u.buildSettlement(ctx, po, intent, event, pending.ID)
		if err != nil {
			return entities.Order{}, err
		}

		err = u.orders.CommitSettlement(ctx, settlement)
		switch {
		case err == nil:
			log.Printf("[settlement][order] commit success order_id=%s products=%d attempts=%d", po.ID, len(settlement.Stock), attempt)
			u.sendNotifications(ctx, settlement.Order)
			return settlement.Order, nil
		case errors.Is(err, interfaces.ErrVersionConflict):
			log.Printf("[settlement][order] stock conflict; retrying order_id=%s attempt=%d", po.ID, attempt)
			continue
		case errors.Is(err, interfaces.ErrPreconditionFailed):
			log.Printf("[settlement][order] pending order consumed concurrently order_id=%s", po.ID)
			return entities.Order{}, ErrPendingOrderNotFound
		case errors.Is(err, interfaces.ErrPendingPaymentConsumed):
			return entities.Order{}, ErrAlreadySettled
		default:
			log.Printf("[settlement][order] commit failed order_id=%s err=%v", po.ID, err)
			return entities.Order{}, err
		}
	}
	return entities.Order{}, ErrSettlementContention
}

func (u *OrderSettlementUseCase) buildSettlement(ctx context.Context, po entities.PendingOrder, intent entities.OrderIntent, event entities.GatewayEvent, pendingPaymentID string) (entities.OrderSettlement, error) {
	now := u.now()
	products := map[string]*entities.Product{}
	touched := map[string][]string{}
	var productIDs []string

	for _, item := range po.Items {
		p, ok := products[item.ProductID]
		if !ok {
			read, err := u.orders.GetProduct(ctx, item.ProductID)
			if err != nil {
				return entities.OrderSettlement{}, err
			}
			if read.ID == "" {
				log.Printf("[settlement][order] product missing; skipping stock order_id=%s product_id=%s", po.ID, item.ProductID)
				products[item.ProductID] = nil
				continue
			}
			p = &read
			products[item.ProductID] = p
		}
		if p == nil {
			continue
		}
		if !DecrementVariantStock(p, item.VariantID, item.Quantity) {
			log.Printf("[settlement][order] variant missing; skipping stock order_id=%s product_id=%s variant_id=%s", po.ID, item.ProductID, item.VariantID)
			continue
		}
		if _, seen := touched[p.ID]; !seen {
			productIDs = append(productIDs, p.ID)
		}
		if !containsString(touched[p.ID], item.VariantID) {
			touched[p.ID] = append(touched[p.ID], item.VariantID)
		}
	}

	stock := make([]entities.ProductStockUpdate, 0, len(productIDs))
	for _, id := range productIDs {
		stock = append(stock, stockUpdate(*products[id], touched[id]))
	}

	cartID := intent.CartID
	if cartID == "" {
		cartID = po.CartID
	}
	return entities.OrderSettlement{
		Order: entities.Order{
			ID:                 po.ID,
			BuyerID:            po.BuyerID,
			SellerID:           po.SellerID,
			Items:              po.Items,
			TotalPrice:         po.TotalPrice,
			Currency:           po.Currency,
			PickupAddress:      po.PickupAddress,
			Status:             entities.OrderStatusPaid,
			PaymentReferenceID: paymentReference(event),
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		Stock:            stock,
		CartID:           cartID,
		PendingPaymentID: pendingPaymentID,
	}, nil
}

// DecrementVariantStock lowers the variant's stock by qty, never below zero.
// It reports false when the variant does not exist.
func DecrementVariantStock(p *entities.Product, variantID string, qty int64) bool {
	for i := range p.Variants {
		if p.Variants[i].ID != variantID {
			continue
		}
		next := p.Variants[i].Stock - qty
		if next < 0 {
			next = 0
		}
		p.Variants[i].Stock = next
		return true
	}
	return false
}

// stockUpdate lists the touched variants of p with their positions, so the
// write only replaces those stock values.
func stockUpdate(p entities.Product, variantIDs []string) entities.ProductStockUpdate {
	up := entities.ProductStockUpdate{ProductID: p.ID, ReadVersion: p.Version}
	for i, v := range p.Variants {
		if containsString(variantIDs, v.ID) {
			up.Variants = append(up.Variants, entities.VariantStock{Index: i, VariantID: v.ID, Stock: v.Stock})
		}
	}
	return up
}

func (u *OrderSettlementUseCase) sendNotifications(ctx context.Context, order entities.Order) {
	buyer := lookupUser(ctx, u.users, "settlement", order.BuyerID)
	seller := lookupUser(ctx, u.users, "settlement", order.SellerID)
	data := map[string]string{"orderId": order.ID}

	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateOrderPlaced, RecipientID: buyer.ID,
		Title: "Order confirmed", Body: fmt.Sprintf("Your order %s has been paid.", order.ID), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationInApp, Template: TemplateNewOrder, RecipientID: seller.ID,
		Title: "New order", Body: fmt.Sprintf("Order %s is waiting to be prepared.", order.ID), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationEmail, Template: TemplateOrderPlaced, RecipientID: buyer.ID, Email: buyer.Email,
		Title: "Your Happy Deals order", Body: fmt.Sprintf("Total paid: %s %s", order.TotalPrice.StringFixed(2), order.Currency), Data: data,
	})
	u.notify.send(ctx, entities.Notification{
		Channel: entities.NotificationEmail, Template: TemplateNewOrder, RecipientID: seller.ID, Email: seller.Email,
		Title: "You received a new order", Body: fmt.Sprintf("Order %s from %s.", order.ID, buyer.DisplayName), Data: data,
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
