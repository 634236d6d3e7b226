package utils

import (
	"errors"
	"log"
	"time"

	"github.com/Typical-techno/investigation-backend/internals/models"

	"gorm.io/gorm"
)

// OTPManager owns the one-time-code lifecycle: issue, verify, consume.
// The invariant it maintains is "at most one currently-valid code per
// user": issuing always deletes prior codes before inserting the new one,
// and verification only ever considers the most recently issued code.
type OTPManager struct {
	DB       *gorm.DB
	Notifier Notifier
	// TTL is how long a code stays valid after issuance
	TTL time.Duration
}

func NewOTPManager(db *gorm.DB, notifier Notifier, ttl time.Duration) *OTPManager {
	return &OTPManager{
		DB:       db,
		Notifier: notifier,
		TTL:      ttl,
	}
}

// Issue invalidates every outstanding code for the user, persists a fresh
// 6-digit code expiring TTL from now, and delivers it. A notifier failure
// fails the whole operation: the just-created code is removed again so the
// store never holds a code the user was never told about.
func (om *OTPManager) Issue(user *models.User) error {
	// Invalidate-before-insert ordering: if a concurrent Issue races us,
	// the worst outcome is a surviving stale row, which verification
	// ignores because it only looks at the newest code.
	if err := om.DB.Unscoped().Where("user_id = ?", user.ID).Delete(&models.OneTimeCode{}).Error; err != nil {
		return err
	}

	otp := models.OneTimeCode{
		UserID:    user.ID,
		Code:      GenerateOTPCode(),
		ExpiresAt: time.Now().Add(om.TTL),
	}

	if err := om.DB.Create(&otp).Error; err != nil {
		return err
	}

	if err := om.Notifier.SendOTP(user.Email, otp.Code, om.TTL); err != nil {
		log.Printf("OTP delivery to %s failed: %v", user.Email, err)
		om.DB.Unscoped().Delete(&otp)
		return ErrDelivery
	}

	return nil
}

// Verify checks a submitted code against the most recently issued one for
// the user. The code must match exactly and the current time must be
// strictly before its expiry; on success the code is consumed (deleted).
// Mismatch and expiry are deliberately indistinguishable to the caller.
func (om *OTPManager) Verify(user *models.User, code string) error {
	var otp models.OneTimeCode
	err := om.DB.Where("user_id = ?", user.ID).Order("created_at DESC").First(&otp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpired
		}
		return err
	}

	if otp.Expired(time.Now()) || otp.Code != code {
		return ErrInvalidOrExpired
	}

	// Consume: a verified code must never be accepted twice
	if err := om.DB.Unscoped().Delete(&otp).Error; err != nil {
		return err
	}

	return nil
}
