package models

import "time"

// GuestSession identifies an anonymous visitor. The session key stands in
// for a user id as cart owner until (if ever) the visitor registers; carts
// are not merged on login.
type GuestSession struct {
	SessionKey string    `gorm:"primaryKey" json:"session_key"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}
