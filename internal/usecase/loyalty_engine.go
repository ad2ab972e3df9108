package usecase

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"happydeals/internal/domain/entities"
)

const (
	promoCodeTTL     = 30 * 24 * time.Hour
	promoCodePrefix  = "LOY-"
	promoCodeLength  = 8
	promoCodeMaxUses = 1
)

// LoyaltyDistribution is the input of one loyalty credit.
// ActiveCard is nil when the customer has no active card at the merchant.
type LoyaltyDistribution struct {
	Program    entities.LoyaltyProgram
	ActiveCard *entities.LoyaltyCard
	CustomerID string
	MerchantID string
	OrderID    string
	Amount     decimal.Decimal
	Now        time.Time
}

// ILoyaltyEngine computes loyalty changes without touching storage. The caller
// persists the outcome in the same write as the merchant credit.
type ILoyaltyEngine interface {
	Distribute(in LoyaltyDistribution) (*entities.LoyaltyOutcome, error)
}

type LoyaltyEngine struct {
	newID   func() string
	newCode func() (string, error)
}

var _ ILoyaltyEngine = (*LoyaltyEngine)(nil)

func NewLoyaltyEngine() *LoyaltyEngine {
	return &LoyaltyEngine{
		newID: uuid.NewString,
		newCode: func() (string, error) {
			code, err := generateCode(promoCodeLength)
			if err != nil {
				return "", err
			}
			return promoCodePrefix + code, nil
		},
	}
}

// EarnedValue converts a purchase amount into program units.
func EarnedValue(programType entities.LoyaltyProgramType, amount decimal.Decimal) int64 {
	switch programType {
	case entities.LoyaltyProgramVisits:
		return 1
	case entities.LoyaltyProgramPoints:
		return amount.Floor().IntPart()
	case entities.LoyaltyProgramAmount:
		return amount.Round(0).IntPart()
	}
	return 0
}

// Distribute credits the earned value to the active card, completing cards and
// opening new ones while value remains. A nil outcome means nothing to write.
func (e *LoyaltyEngine) Distribute(in LoyaltyDistribution) (*entities.LoyaltyOutcome, error) {
	program := in.Program
	if !program.IsActive() {
		return nil, nil
	}
	earned := EarnedValue(program.Type, in.Amount)
	if earned <= 0 {
		return nil, nil
	}
	if openingTarget(program) <= 0 {
		log.Printf("[loyalty][engine] program without target program_id=%s merchant_id=%s", program.ID, in.MerchantID)
		return nil, nil
	}

	out := &entities.LoyaltyOutcome{
		History: entities.LoyaltyHistory{
			ID:          e.newID(),
			CustomerID:  in.CustomerID,
			MerchantID:  in.MerchantID,
			ProgramID:   program.ID,
			OrderID:     in.OrderID,
			EarnedValue: earned,
			CreatedAt:   in.Now,
		},
	}

	var card entities.LoyaltyCard
	if in.ActiveCard != nil && in.ActiveCard.ID != "" && in.ActiveCard.Status == entities.LoyaltyCardActive {
		card = *in.ActiveCard
		card.ReachedTiers = append([]int64(nil), in.ActiveCard.ReachedTiers...)
	} else {
		card = e.openCard(in)
	}

	remaining := earned
	for remaining > 0 {
		target := stepTarget(program, card)
		room := target - card.CurrentValue
		if room < 0 {
			room = 0
		}
		add := remaining
		if add > room {
			add = room
		}
		card.CurrentValue += add
		card.TotalEarned += add
		card.LastTransaction = in.Now
		remaining -= add

		if card.CurrentValue < target {
			out.History.Details = append(out.History.Details, entities.LoyaltyHistoryDetail{
				CardID: card.ID, Action: entities.LoyaltyActionCredited, ValueAdded: add, ValueAfter: card.CurrentValue,
			})
			continue
		}

		reward, isPercentage := rewardFor(program, target)
		promo, err := e.mintPromoCode(in, card.ID, reward, isPercentage)
		if err != nil {
			return nil, err
		}
		out.PromoCodes = append(out.PromoCodes, promo)

		if program.IsTiered() {
			card.ReachedTiers = append(card.ReachedTiers, target)
			if target < card.TargetValue {
				out.History.Details = append(out.History.Details, entities.LoyaltyHistoryDetail{
					CardID: card.ID, Action: entities.LoyaltyActionTierReached, ValueAdded: add, ValueAfter: card.CurrentValue, PromoCodeID: promo.ID,
				})
				continue
			}
		}

		card.Status = entities.LoyaltyCardCompleted
		out.History.Details = append(out.History.Details, entities.LoyaltyHistoryDetail{
			CardID: card.ID, Action: entities.LoyaltyActionCompleted, ValueAdded: add, ValueAfter: card.CurrentValue, PromoCodeID: promo.ID,
		})
		out.Cards = append(out.Cards, card)
		card = entities.LoyaltyCard{}
		if remaining > 0 {
			card = e.openCard(in)
		}
	}
	if card.ID != "" {
		out.Cards = append(out.Cards, card)
	}
	return out, nil
}

func (e *LoyaltyEngine) openCard(in LoyaltyDistribution) entities.LoyaltyCard {
	return entities.LoyaltyCard{
		ID:              e.newID(),
		CustomerID:      in.CustomerID,
		MerchantID:      in.MerchantID,
		ProgramID:       in.Program.ID,
		TargetValue:     openingTarget(in.Program),
		Status:          entities.LoyaltyCardActive,
		LastTransaction: in.Now,
		CreatedAt:       in.Now,
	}
}

func (e *LoyaltyEngine) mintPromoCode(in LoyaltyDistribution, cardID string, reward decimal.Decimal, isPercentage bool) (entities.PromoCode, error) {
	code, err := e.newCode()
	if err != nil {
		return entities.PromoCode{}, err
	}
	return entities.PromoCode{
		ID:            e.newID(),
		Code:          code,
		CustomerID:    in.CustomerID,
		MerchantID:    in.MerchantID,
		DiscountValue: reward,
		IsPercentage:  isPercentage,
		MaxUses:       promoCodeMaxUses,
		Status:        entities.PromoCodeActive,
		LoyaltyCardID: cardID,
		ExpiresAt:     in.Now.Add(promoCodeTTL),
		CreatedAt:     in.Now,
	}, nil
}

// openingTarget is the value a new card freezes: the top tier for tiered
// programs, the program target otherwise.
func openingTarget(p entities.LoyaltyProgram) int64 {
	if p.IsTiered() {
		tiers := p.SortedTiers()
		if len(tiers) > 0 {
			return tiers[len(tiers)-1].Threshold
		}
	}
	return p.TargetValue
}

// stepTarget is the next value at which the card earns a reward.
func stepTarget(p entities.LoyaltyProgram, card entities.LoyaltyCard) int64 {
	if p.IsTiered() {
		for _, t := range p.SortedTiers() {
			if t.Threshold < card.TargetValue && !card.HasReachedTier(t.Threshold) {
				return t.Threshold
			}
		}
	}
	return card.TargetValue
}

func rewardFor(p entities.LoyaltyProgram, target int64) (decimal.Decimal, bool) {
	if p.IsTiered() {
		for _, t := range p.Tiers {
			if t.Threshold == target {
				return t.RewardValue, t.IsPercentage
			}
		}
	}
	return p.RewardValue, p.IsPercentage
}
