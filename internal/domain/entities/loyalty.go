package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type LoyaltyProgramType string

const (
	LoyaltyProgramVisits LoyaltyProgramType = "visits"
	LoyaltyProgramPoints LoyaltyProgramType = "points"
	LoyaltyProgramAmount LoyaltyProgramType = "amount"
)

type LoyaltyProgramStatus string

const (
	LoyaltyProgramActive   LoyaltyProgramStatus = "active"
	LoyaltyProgramInactive LoyaltyProgramStatus = "inactive"
)

// LoyaltyTier is one reward level of a tiered points program.
type LoyaltyTier struct {
	Threshold    int64           `json:"threshold"`
	RewardValue  decimal.Decimal `json:"reward_value"`
	IsPercentage bool            `json:"is_percentage"`
}

type LoyaltyProgram struct {
	ID           string               `json:"id"`
	MerchantID   string               `json:"merchant_id"`
	Type         LoyaltyProgramType   `json:"type"`
	TargetValue  int64                `json:"target_value"`
	Tiers        []LoyaltyTier        `json:"tiers,omitempty"`
	RewardValue  decimal.Decimal      `json:"reward_value"`
	IsPercentage bool                 `json:"is_percentage"`
	Status       LoyaltyProgramStatus `json:"status"`
}

func (p LoyaltyProgram) IsActive() bool {
	return p.ID != "" && p.Status == LoyaltyProgramActive
}

// IsTiered reports whether cards progress through tiers instead of a single target.
func (p LoyaltyProgram) IsTiered() bool {
	return p.Type == LoyaltyProgramPoints && len(p.Tiers) > 0
}

// SortedTiers returns the tiers by ascending threshold, ignoring non-positive thresholds.
func (p LoyaltyProgram) SortedTiers() []LoyaltyTier {
	out := make([]LoyaltyTier, 0, len(p.Tiers))
	for _, t := range p.Tiers {
		if t.Threshold > 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out
}

type LoyaltyCardStatus string

const (
	LoyaltyCardActive    LoyaltyCardStatus = "active"
	LoyaltyCardCompleted LoyaltyCardStatus = "completed"
)

// LoyaltyCard tracks one customer's progress toward a reward.
//
// At most one active card per (customer, merchant). TargetValue is frozen when
// the card opens. Version 0 marks a card that has not been persisted yet.
type LoyaltyCard struct {
	ID              string            `json:"id"`
	CustomerID      string            `json:"customer_id"`
	MerchantID      string            `json:"merchant_id"`
	ProgramID       string            `json:"program_id"`
	CurrentValue    int64             `json:"current_value"`
	TargetValue     int64             `json:"target_value"`
	ReachedTiers    []int64           `json:"reached_tiers,omitempty"`
	TotalEarned     int64             `json:"total_earned"`
	TotalRedeemed   int64             `json:"total_redeemed"`
	Status          LoyaltyCardStatus `json:"status"`
	LastTransaction time.Time         `json:"last_transaction"`
	CreatedAt       time.Time         `json:"created_at"`
	Version         int64             `json:"version"`
}

func (c LoyaltyCard) IsNew() bool { return c.Version == 0 }

func (c LoyaltyCard) HasReachedTier(threshold int64) bool {
	for _, t := range c.ReachedTiers {
		if t == threshold {
			return true
		}
	}
	return false
}

type LoyaltyAction string

const (
	LoyaltyActionCredited    LoyaltyAction = "credited"
	LoyaltyActionTierReached LoyaltyAction = "tier_reached"
	LoyaltyActionCompleted   LoyaltyAction = "completed"
)

type LoyaltyHistoryDetail struct {
	CardID      string        `json:"card_id"`
	Action      LoyaltyAction `json:"action"`
	ValueAdded  int64         `json:"value_added"`
	ValueAfter  int64         `json:"value_after"`
	PromoCodeID string        `json:"promo_code_id,omitempty"`
}

// LoyaltyHistory is one record per distribution, listing every card touched.
type LoyaltyHistory struct {
	ID          string                 `json:"id"`
	CustomerID  string                 `json:"customer_id"`
	MerchantID  string                 `json:"merchant_id"`
	ProgramID   string                 `json:"program_id"`
	OrderID     string                 `json:"order_id"`
	EarnedValue int64                  `json:"earned_value"`
	Details     []LoyaltyHistoryDetail `json:"details"`
	CreatedAt   time.Time              `json:"created_at"`
}

type PromoCodeStatus string

const (
	PromoCodeActive  PromoCodeStatus = "active"
	PromoCodeUsed    PromoCodeStatus = "used"
	PromoCodeExpired PromoCodeStatus = "expired"
)

type PromoCode struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	CustomerID    string          `json:"customer_id"`
	MerchantID    string          `json:"merchant_id"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	IsPercentage  bool            `json:"is_percentage"`
	MaxUses       int64           `json:"max_uses"`
	UsageCount    int64           `json:"usage_count"`
	UsedBy        []string        `json:"used_by,omitempty"`
	Status        PromoCodeStatus `json:"status"`
	LoyaltyCardID string          `json:"loyalty_card_id,omitempty"`
	ExpiresAt     time.Time       `json:"expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// LoyaltyOutcome is what one distribution wants written. Cards holds every
// touched card in the order they were processed.
type LoyaltyOutcome struct {
	Cards      []LoyaltyCard
	PromoCodes []PromoCode
	History    LoyaltyHistory
}
