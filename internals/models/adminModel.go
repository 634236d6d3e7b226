package models

import "gorm.io/gorm"

// Admin accounts are separate from Users: they gate registration of other
// admins and review Pending user requests.
type Admin struct {
	gorm.Model
	Email       string `gorm:"column:email;uniqueIndex" json:"email"`
	Username    string `gorm:"column:username" json:"username"`
	PhoneNumber string `gorm:"column:phone_number" json:"phoneNumber"`
	Password    string `gorm:"column:password" json:"-"`
	IsAdmin     bool   `gorm:"column:is_admin;default:false" json:"isAdmin"`
	IsActive    bool   `gorm:"column:is_active;default:false" json:"isActive"`
}

// Authorized reports whether this record may act as an administrator.
// Both flags must be set: IsAdmin marks the capability, IsActive gates it.
func (a *Admin) Authorized() bool {
	return a.IsAdmin && a.IsActive
}

// PublicAdmin is the caller-visible projection of an Admin.
type PublicAdmin struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	IsAdmin     bool   `json:"isAdmin"`
	IsActive    bool   `json:"isActive"`
}

func (a *Admin) Public() PublicAdmin {
	return PublicAdmin{
		ID:          a.ID,
		Email:       a.Email,
		Username:    a.Username,
		PhoneNumber: a.PhoneNumber,
		IsAdmin:     a.IsAdmin,
		IsActive:    a.IsActive,
	}
}
