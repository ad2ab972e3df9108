package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var (
	ErrInvalidLedgerAmount   = errors.New("order total must be a positive amount")
	ErrInvalidLedgerEvent    = errors.New("order completion requires order and seller ids")
	ErrMerchantNotFound      = errors.New("merchant not found")
	ErrLedgerAlreadyCredited = errors.New("order already credited to merchant ledger")
)

const maxLedgerAttempts = 3

// maxCreditLoyaltyWrites leaves room for the balance update and the ledger
// entry in a 100 item transaction.
const maxCreditLoyaltyWrites = 98

// IMerchantLedgerUseCase credits merchants when an order completes.
type IMerchantLedgerUseCase interface {
	OnOrderCompleted(ctx context.Context, ev entities.OrderCompletedEvent) (entities.TransactionLedgerEntry, error)
}

type MerchantLedgerUseCase struct {
	merchants  interfaces.IMerchantRepository
	loyalty    interfaces.ILoyaltyRepository
	engine     ILoyaltyEngine
	notify     notifier
	feePercent decimal.Decimal
	now        func() time.Time
}

var _ IMerchantLedgerUseCase = (*MerchantLedgerUseCase)(nil)

func NewMerchantLedgerUseCase(merchants interfaces.IMerchantRepository, loyalty interfaces.ILoyaltyRepository, engine ILoyaltyEngine, publisher interfaces.INotificationPublisher, feePercent decimal.Decimal) *MerchantLedgerUseCase {
	return &MerchantLedgerUseCase{
		merchants:  merchants,
		loyalty:    loyalty,
		engine:     engine,
		notify:     notifier{publisher: publisher, area: "ledger"},
		feePercent: feePercent,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

var hundred = decimal.NewFromInt(100)

// SplitFee returns the platform fee rounded to cents and the merchant share.
// fee + net always equals total.
func SplitFee(total, feePercent decimal.Decimal) (fee, net decimal.Decimal) {
	fee = total.Mul(feePercent).Div(hundred).Round(2)
	return fee, total.Sub(fee)
}

func (u *MerchantLedgerUseCase) OnOrderCompleted(ctx context.Context, ev entities.OrderCompletedEvent) (entities.TransactionLedgerEntry, error) {
	log.Printf("[ledger][usecase] order completed start order_id=%s seller_id=%s total=%q", ev.OrderID, ev.SellerID, ev.TotalPrice)
	total, err := decimal.NewFromString(strings.TrimSpace(ev.TotalPrice))
	if err != nil || !total.IsPositive() {
		log.Printf("[ledger][usecase] invalid total order_id=%s total=%q", ev.OrderID, ev.TotalPrice)
		return entities.TransactionLedgerEntry{}, ErrInvalidLedgerAmount
	}
	orderID := strings.TrimSpace(ev.OrderID)
	sellerID := strings.TrimSpace(ev.SellerID)
	if orderID == "" || sellerID == "" {
		return entities.TransactionLedgerEntry{}, ErrInvalidLedgerEvent
	}

	merchant, err := u.merchants.GetByID(ctx, sellerID)
	if err != nil {
		log.Printf("[ledger][usecase] merchant lookup failed seller_id=%s err=%v", sellerID, err)
		return entities.TransactionLedgerEntry{}, err
	}
	if merchant.ID == "" {
		log.Printf("[ledger][usecase] merchant not found seller_id=%s", sellerID)
		return entities.TransactionLedgerEntry{}, ErrMerchantNotFound
	}

	now := u.now()
	fee, net := SplitFee(total, u.feePercent)
	entry := entities.TransactionLedgerEntry{
		ID:             entities.LedgerEntryIDForOrder(orderID),
		MerchantID:     sellerID,
		PurchaseID:     orderID,
		TotalAmount:    total,
		FeeAmount:      fee,
		AmountAfterFee: net,
		Type:           entities.LedgerEntryTypeCredit,
		Status:         entities.LedgerEntryStatusCompleted,
		CreatedAt:      now,
	}

	for attempt := 1; ; attempt++ {
		outcome, err := u.distributeLoyalty(ctx, merchant, ev.BuyerID, orderID, total, now)
		if err != nil {
			log.Printf("[ledger][usecase] loyalty distribution failed order_id=%s err=%v", orderID, err)
			return entities.TransactionLedgerEntry{}, err
		}

		core, cards, promos := splitLoyaltyOutcome(outcome, maxCreditLoyaltyWrites)
		err = u.merchants.CommitCredit(ctx, entities.LedgerCredit{Entry: entry, Loyalty: core})
		switch {
		case err == nil:
			log.Printf("[ledger][usecase] credit success order_id=%s seller_id=%s total=%s fee=%s net=%s attempts=%d", orderID, sellerID, total, fee, net, attempt)
			if len(cards)+len(promos) > 0 {
				if err := u.loyalty.SaveRewards(ctx, cards, promos); err != nil {
					log.Printf("[ledger][usecase] RECONCILE loyalty rewards not saved order_id=%s cards=%d promo_codes=%d err=%v", orderID, len(cards), len(promos), err)
					u.notifyRewards(ctx, core)
					return entry, nil
				}
				log.Printf("[ledger][usecase] loyalty rewards saved order_id=%s cards=%d promo_codes=%d", orderID, len(cards), len(promos))
			}
			u.notifyRewards(ctx, outcome)
			return entry, nil
		case errors.Is(err, interfaces.ErrAlreadyExists):
			log.Printf("[ledger][usecase] already credited order_id=%s", orderID)
			return entities.TransactionLedgerEntry{}, ErrLedgerAlreadyCredited
		case errors.Is(err, interfaces.ErrPreconditionFailed):
			return entities.TransactionLedgerEntry{}, ErrMerchantNotFound
		case errors.Is(err, interfaces.ErrVersionConflict) && attempt < maxLedgerAttempts:
			log.Printf("[ledger][usecase] loyalty card conflict; retrying order_id=%s attempt=%d", orderID, attempt)
			continue
		default:
			log.Printf("[ledger][usecase] credit failed order_id=%s attempts=%d err=%v", orderID, attempt, err)
			return entities.TransactionLedgerEntry{}, fmt.Errorf("commit ledger credit: %w", err)
		}
	}
}

// splitLoyaltyOutcome keeps at most limit writes for the credit transaction.
// Cards read at a version, the card left active and the history line always
// stay; the remaining completed cards and reward codes are returned to be
// saved once the credit has committed.
func splitLoyaltyOutcome(out *entities.LoyaltyOutcome, limit int) (*entities.LoyaltyOutcome, []entities.LoyaltyCard, []entities.PromoCode) {
	if out == nil {
		return nil, nil, nil
	}
	size := len(out.Cards) + len(out.PromoCodes)
	if out.History.ID != "" {
		size++
	}
	if size <= limit {
		return out, nil, nil
	}

	budget := limit
	if out.History.ID != "" {
		budget--
	}
	last := len(out.Cards) - 1
	keep := make([]bool, len(out.Cards))
	for i, c := range out.Cards {
		if !c.IsNew() || i == last {
			keep[i] = true
			budget--
		}
	}
	for i := range out.Cards {
		if !keep[i] && budget > 0 {
			keep[i] = true
			budget--
		}
	}

	core := &entities.LoyaltyOutcome{History: out.History}
	var cards []entities.LoyaltyCard
	for i, c := range out.Cards {
		if keep[i] {
			core.Cards = append(core.Cards, c)
		} else {
			cards = append(cards, c)
		}
	}
	var promos []entities.PromoCode
	for _, p := range out.PromoCodes {
		if budget > 0 {
			core.PromoCodes = append(core.PromoCodes, p)
			budget--
		} else {
			promos = append(promos, p)
		}
	}
	return core, cards, promos
}

func (u *MerchantLedgerUseCase) distributeLoyalty(ctx context.Context, merchant entities.MerchantAccount, buyerID, orderID string, total decimal.Decimal, now time.Time) (*entities.LoyaltyOutcome, error) {
	buyerID = strings.TrimSpace(buyerID)
	if u.loyalty == nil || u.engine == nil || merchant.LoyaltyProgramID == "" || buyerID == "" {
		return nil, nil
	}
	program, err := u.loyalty.GetProgram(ctx, merchant.LoyaltyProgramID)
	if err != nil {
		return nil, err
	}
	if program.ID == "" {
		return nil, nil
	}
	card, err := u.loyalty.GetActiveCard(ctx, buyerID, merchant.ID)
	if err != nil {
		return nil, err
	}
	var active *entities.LoyaltyCard
	if card.ID != "" {
		active = &card
	}
	return u.engine.Distribute(LoyaltyDistribution{
		Program:    program,
		ActiveCard: active,
		CustomerID: buyerID,
		MerchantID: merchant.ID,
		OrderID:    orderID,
		Amount:     total,
		Now:        now,
	})
}

func (u *MerchantLedgerUseCase) notifyRewards(ctx context.Context, outcome *entities.LoyaltyOutcome) {
	if outcome == nil {
		return
	}
	for _, promo := range outcome.PromoCodes {
		u.notify.send(ctx, entities.Notification{
			Channel:     entities.NotificationInApp,
			Template:    TemplateLoyaltyReward,
			RecipientID: promo.CustomerID,
			Title:       "You earned a reward",
			Body:        fmt.Sprintf("Use code %s before %s.", promo.Code, promo.ExpiresAt.Format("2006-01-02")),
			Data:        map[string]string{"promoCodeId": promo.ID, "merchantId": promo.MerchantID},
		})
	}
}
