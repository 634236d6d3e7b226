package models

import (
	"time"

	"gorm.io/gorm"
)

// OneTimeCode is a short-lived numeric code proving control of a user's
// email address. At most one code per user should be outstanding at a time;
// issuing a new one deletes the previous ones first. Verification orders by
// CreatedAt so an extra stale row surviving a lost delete race is harmless.
type OneTimeCode struct {
	gorm.Model
	UserID    uint      `gorm:"column:user_id;index"`
	Code      string    `gorm:"column:code"`
	ExpiresAt time.Time `gorm:"column:expires_at;index"`
}

// Expired reports whether the code is no longer acceptable at the given
// instant. A code is valid strictly before ExpiresAt; at the instant itself
// it is already expired.
func (o *OneTimeCode) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
