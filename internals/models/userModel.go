package models

import "gorm.io/gorm"

// AccountStatus is the verification state of a User account.
// The source of truth is the database column, so the values are stable strings.
type AccountStatus string

const (
	// StatusPending covers every account that has not completed OTP verification yet
	StatusPending AccountStatus = "Pending"
	// StatusActive means the email was verified and the account is fully authorized
	StatusActive AccountStatus = "Active"
)

type User struct {
	gorm.Model
	Email       string        `gorm:"column:email;uniqueIndex" json:"email"`
	// Phone uniqueness is enforced at the application layer because its
	// scope is configurable (email-only vs email+phone duplicate checks)
	PhoneNumber string `gorm:"column:phone_number;index" json:"phoneNumber"`
	Username    string        `gorm:"column:username" json:"username"`
	Designation string        `gorm:"column:designation" json:"designation"`
	Station     string        `gorm:"column:station" json:"station"`
	Photo       string        `gorm:"column:photo" json:"photo"`
	Password    string        `gorm:"column:password" json:"-"` // bcrypt hash, never the plaintext
	Status      AccountStatus `gorm:"column:status;default:Pending" json:"status"`
}

// Activate flips a Pending account to Active. The transition is one-way;
// calling it on an already-Active account is a no-op.
func (u *User) Activate() {
	u.Status = StatusActive
}

// IsActive reports whether the account finished verification.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// PublicUser is the caller-visible projection of a User. It never carries
// the password hash.
type PublicUser struct {
	ID          uint          `json:"id"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phoneNumber"`
	Username    string        `json:"username"`
	Designation string        `json:"designation"`
	Station     string        `json:"station"`
	Photo       string        `json:"photo"`
	Status      AccountStatus `json:"status"`
}

// Public returns the safe projection of the user for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
		Designation: u.Designation,
		Station:     u.Station,
		Photo:       u.Photo,
		Status:      u.Status,
	}
}
