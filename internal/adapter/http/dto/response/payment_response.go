package response

import "happydeals/internal/usecase"

type InitiatePaymentResponse struct {
	ID           string `json:"id"`
	RedirectURL  string `json:"redirect_url,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

func FromInitiatePaymentResult(r usecase.InitiatePaymentResult) InitiatePaymentResponse {
	return InitiatePaymentResponse{
		ID:           r.SessionOrIntentID,
		RedirectURL:  r.RedirectURL,
		ClientSecret: r.ClientSecret,
	}
}

type CheckoutStatusResponse struct {
	SessionID string `json:"session_id"`
	Paid      bool   `json:"paid"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
