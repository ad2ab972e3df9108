package entities

import "time"

type NotificationChannel string

const (
	NotificationInApp NotificationChannel = "in_app"
	NotificationEmail NotificationChannel = "email"
	NotificationPush  NotificationChannel = "push"
)

// Notification is a fire-and-forget message for the delivery workers.
type Notification struct {
	ID          string              `json:"id"`
	Channel     NotificationChannel `json:"channel"`
	Template    string              `json:"template"`
	RecipientID string              `json:"recipient_id"`
	Email       string              `json:"email,omitempty"`
	DeviceToken string              `json:"device_token,omitempty"`
	Title       string              `json:"title"`
	Body        string              `json:"body"`
	Data        map[string]string   `json:"data,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}
