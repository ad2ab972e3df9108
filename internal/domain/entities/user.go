package entities

// User is the subset of the profile document this service reads and writes.
type User struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	DisplayName       string `json:"display_name"`
	DeviceToken       string `json:"device_token,omitempty"`
	GatewayCustomerID string `json:"gateway_customer_id,omitempty"`
}
