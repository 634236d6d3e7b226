package utils

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Typical-techno/investigation-backend/internals/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubNotifier records the last code instead of sending mail.
type stubNotifier struct {
	lastEmail string
	lastCode  string
	fail      bool
}

func (s *stubNotifier) SendOTP(toEmail, code string, _ time.Duration) error {
	if s.fail {
		return errors.New("smtp unreachable")
	}
	s.lastEmail = toEmail
	s.lastCode = code
	return nil
}

func newTestOTPManager(t *testing.T) (*OTPManager, *stubNotifier, *models.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.OneTimeCode{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := models.User{Email: "officer@gov.in", Status: models.StatusPending}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	notifier := &stubNotifier{}
	return NewOTPManager(db, notifier, 5*time.Minute), notifier, &user
}

func countCodes(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.OneTimeCode{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count codes: %v", err)
	}
	return n
}

func TestIssueInvalidatesPriorCodes(t *testing.T) {
	om, notifier, user := newTestOTPManager(t)

	if err := om.Issue(user); err != nil {
		t.Fatalf("first issue: %v", err)
	}
	firstCode := notifier.lastCode

	if err := om.Issue(user); err != nil {
		t.Fatalf("second issue: %v", err)
	}
	secondCode := notifier.lastCode

	if n := countCodes(t, om.DB, user.ID); n != 1 {
		t.Fatalf("outstanding codes = %d, want 1", n)
	}

	// The superseded code must no longer verify
	if err := om.Verify(user, firstCode); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("stale code verified, err = %v", err)
	}

	if err := om.Verify(user, secondCode); err != nil {
		t.Fatalf("fresh code rejected: %v", err)
	}
}

func TestVerifyConsumesTheCode(t *testing.T) {
	om, notifier, user := newTestOTPManager(t)

	if err := om.Issue(user); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := om.Verify(user, notifier.lastCode); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if n := countCodes(t, om.DB, user.ID); n != 0 {
		t.Fatalf("code rows after verify = %d, want 0", n)
	}

	// Second submission of the same code must fail
	if err := om.Verify(user, notifier.lastCode); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("consumed code verified again, err = %v", err)
	}
}

func TestVerifyRejectsExpiredCode(t *testing.T) {
	om, notifier, user := newTestOTPManager(t)

	if err := om.Issue(user); err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Push the stored expiry into the past
	if err := om.DB.Model(&models.OneTimeCode{}).Where("user_id = ?", user.ID).
		Update("expires_at", time.Now().Add(-time.Second)).Error; err != nil {
		t.Fatalf("update expiry: %v", err)
	}

	if err := om.Verify(user, notifier.lastCode); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("expired code verified, err = %v", err)
	}
}

func TestVerifyRejectsMismatch(t *testing.T) {
	om, _, user := newTestOTPManager(t)

	if err := om.Issue(user); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := om.Verify(user, "000000x"); !errors.Is(err, ErrInvalidOrExpired) {
		t.Fatalf("mismatched code verified, err = %v", err)
	}
}

func TestDeliveryFailureFailsIssue(t *testing.T) {
	om, notifier, user := newTestOTPManager(t)
	notifier.fail = true

	if err := om.Issue(user); !errors.Is(err, ErrDelivery) {
		t.Fatalf("issue err = %v, want ErrDelivery", err)
	}

	// No code the user never received may stay behind
	if n := countCodes(t, om.DB, user.ID); n != 0 {
		t.Fatalf("code rows after failed delivery = %d, want 0", n)
	}
}

func TestGenerateOTPCodeWidth(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateOTPCode()
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
	}
}
