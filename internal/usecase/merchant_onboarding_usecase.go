package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"
)

var ErrMerchantEmailMissing = errors.New("merchant needs an email before payout onboarding")

// OnboardingURLs are the pages Stripe sends the merchant back to.
type OnboardingURLs struct {
	RefreshURL string
	ReturnURL  string
}

type OnboardingLink struct {
	AccountID string
	URL       string
}

// IMerchantOnboardingUseCase connects merchants to the payment provider so
// payouts have a destination.
type IMerchantOnboardingUseCase interface {
	StartOnboarding(ctx context.Context, merchantID string) (OnboardingLink, error)
	CreateOnboardingLink(ctx context.Context, merchantID string) (OnboardingLink, error)
	CreateDashboardLink(ctx context.Context, merchantID string) (OnboardingLink, error)
}

type MerchantOnboardingUseCase struct {
	gateway   interfaces.IPaymentGateway
	merchants interfaces.IMerchantRepository
	urls      OnboardingURLs
	country   string
}

var _ IMerchantOnboardingUseCase = (*MerchantOnboardingUseCase)(nil)

func NewMerchantOnboardingUseCase(gateway interfaces.IPaymentGateway, merchants interfaces.IMerchantRepository, urls OnboardingURLs, country string) *MerchantOnboardingUseCase {
	return &MerchantOnboardingUseCase{
		gateway:   gateway,
		merchants: merchants,
		urls:      urls,
		country:   strings.ToUpper(strings.TrimSpace(country)),
	}
}

// StartOnboarding opens a connected account unless the merchant already has
// one, then returns a hosted onboarding link for it.
func (u *MerchantOnboardingUseCase) StartOnboarding(ctx context.Context, merchantID string) (OnboardingLink, error) {
	merchant, err := u.merchant(ctx, merchantID)
	if err != nil {
		return OnboardingLink{}, err
	}

	accountID := merchant.ConnectedPayoutAccountID
	if accountID == "" {
		if strings.TrimSpace(merchant.Email) == "" {
			log.Printf("[payout][onboarding] merchant email missing merchant_id=%s", merchant.ID)
			return OnboardingLink{}, ErrMerchantEmailMissing
		}
		accountID, err = u.gateway.CreateConnectedAccount(ctx, entities.ConnectedAccountRequest{
			MerchantID: merchant.ID,
			Email:      merchant.Email,
			Country:    u.country,
		})
		if err != nil {
			return OnboardingLink{}, err
		}
		if accountID, err = u.storeAccount(ctx, merchant.ID, accountID); err != nil {
			return OnboardingLink{}, err
		}
		log.Printf("[payout][onboarding] connected account stored merchant_id=%s account_id=%s", merchant.ID, accountID)
	} else {
		log.Printf("[payout][onboarding] reusing connected account merchant_id=%s account_id=%s", merchant.ID, accountID)
	}
	return u.onboardingLink(ctx, accountID)
}

func (u *MerchantOnboardingUseCase) CreateOnboardingLink(ctx context.Context, merchantID string) (OnboardingLink, error) {
	merchant, err := u.merchant(ctx, merchantID)
	if err != nil {
		return OnboardingLink{}, err
	}
	if merchant.ConnectedPayoutAccountID == "" {
		return OnboardingLink{}, ErrPayoutAccountNotConfigured
	}
	return u.onboardingLink(ctx, merchant.ConnectedPayoutAccountID)
}

func (u *MerchantOnboardingUseCase) CreateDashboardLink(ctx context.Context, merchantID string) (OnboardingLink, error) {
	merchant, err := u.merchant(ctx, merchantID)
	if err != nil {
		return OnboardingLink{}, err
	}
	if merchant.ConnectedPayoutAccountID == "" {
		return OnboardingLink{}, ErrPayoutAccountNotConfigured
	}
	url, err := u.gateway.CreateDashboardLink(ctx, merchant.ConnectedPayoutAccountID)
	if err != nil {
		log.Printf("[payout][onboarding] dashboard link failed merchant_id=%s err=%v", merchant.ID, err)
		return OnboardingLink{}, err
	}
	return OnboardingLink{AccountID: merchant.ConnectedPayoutAccountID, URL: url}, nil
}

// merchant loads the caller's own merchant account.
func (u *MerchantOnboardingUseCase) merchant(ctx context.Context, merchantID string) (entities.MerchantAccount, error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		return entities.MerchantAccount{}, ErrUnauthenticated
	}
	merchant, err := u.merchants.GetByID(ctx, merchantID)
	if err != nil {
		log.Printf("[payout][onboarding] merchant lookup failed merchant_id=%s err=%v", merchantID, err)
		return entities.MerchantAccount{}, err
	}
	if merchant.ID == "" {
		return entities.MerchantAccount{}, ErrMerchantNotFound
	}
	return merchant, nil
}

// storeAccount keeps whichever account was stored first when two onboarding
// requests race.
func (u *MerchantOnboardingUseCase) storeAccount(ctx context.Context, merchantID, accountID string) (string, error) {
	err := u.merchants.SetConnectedPayoutAccount(ctx, merchantID, accountID)
	if err == nil {
		return accountID, nil
	}
	if !errors.Is(err, interfaces.ErrPreconditionFailed) {
		log.Printf("[payout][onboarding] RECONCILE connected account not stored merchant_id=%s account_id=%s err=%v", merchantID, accountID, err)
		return "", err
	}
	current, err := u.merchant(ctx, merchantID)
	if err != nil {
		return "", err
	}
	if current.ConnectedPayoutAccountID == "" {
		return "", ErrMerchantNotFound
	}
	log.Printf("[payout][onboarding] RECONCILE orphan connected account merchant_id=%s orphan=%s kept=%s", merchantID, accountID, current.ConnectedPayoutAccountID)
	return current.ConnectedPayoutAccountID, nil
}

func (u *MerchantOnboardingUseCase) onboardingLink(ctx context.Context, accountID string) (OnboardingLink, error) {
	url, err := u.gateway.CreateAccountOnboardingLink(ctx, entities.AccountLinkRequest{
		AccountID:  accountID,
		RefreshURL: u.urls.RefreshURL,
		ReturnURL:  u.urls.ReturnURL,
	})
	if err != nil {
		log.Printf("[payout][onboarding] onboarding link failed account_id=%s err=%v", accountID, err)
		return OnboardingLink{}, err
	}
	return OnboardingLink{AccountID: accountID, URL: url}, nil
}
