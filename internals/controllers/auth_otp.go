package controllers

import (
	"errors"
	"net/http"

	"github.com/Typical-techno/investigation-backend/internals/models"
	"github.com/Typical-techno/investigation-backend/internals/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RequestOTPReqBody struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phone"`
	Designation string `json:"designation"`
	Station     string `json:"station"`
}

// RequestOTP starts the verification flow for a trusted-domain email.
// An unknown email gets a fresh Pending account; a known one just gets a
// new code. Either way any prior outstanding code is invalidated first, so
// at most one code per user is ever valid.
func (a *AuthController) RequestOTP(c *gin.Context) {
	var body RequestOTPReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	if !a.Config.TrustedEmail(body.Email) {
		respondError(c, utils.ErrUntrustedDomain)
		return
	}

	var user models.User
	err := a.DB.Where("email = ?", body.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if dupErr := a.findDuplicate(body.Email, body.PhoneNumber); dupErr != nil {
			respondError(c, dupErr)
			return
		}

		hash, hashErr := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
		if hashErr != nil {
			respondError(c, hashErr)
			return
		}

		user = models.User{
			Email:       body.Email,
			PhoneNumber: body.PhoneNumber,
			Username:    body.Username,
			Designation: body.Designation,
			Station:     body.Station,
			Password:    string(hash),
			Status:      models.StatusPending,
		}
		if createErr := a.DB.Create(&user).Error; createErr != nil {
			respondError(c, createErr)
			return
		}
	} else if err != nil {
		respondError(c, err)
		return
	}

	if err := a.OTPManager.Issue(&user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to your email"})
}

type VerifyOTPReqBody struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// VerifyOTP consumes the most recently issued code for the user. On
// success the account transitions Pending -> Active (a no-op when already
// Active) and a session token is returned. A still-Pending user never
// receives a token through any other path.
func (a *AuthController) VerifyOTP(c *gin.Context) {
	var body VerifyOTPReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No hint about whether the account exists
			respondError(c, utils.ErrInvalidOrExpired)
			return
		}
		respondError(c, err)
		return
	}

	if err := a.OTPManager.Verify(&user, body.OTP); err != nil {
		respondError(c, err)
		return
	}

	if !user.IsActive() {
		user.Activate()
		if err := a.DB.Model(&user).Update("status", models.StatusActive).Error; err != nil {
			respondError(c, err)
			return
		}
	}

	token, err := a.TokenManager.CreateUserToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Public()})
}

type ResendOTPReqBody struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendOTP re-issues a code for an existing user, e.g. when the first
// email never arrived or the code lapsed. Unlike RequestOTP it never
// creates an account.
func (a *AuthController) ResendOTP(c *gin.Context) {
	var body ResendOTPReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	if !a.Config.TrustedEmail(body.Email) {
		respondError(c, utils.ErrUntrustedDomain)
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, utils.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}

	if err := a.OTPManager.Issue(&user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to your email"})
}

type ForgotPasswordReqBody struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ForgotPassword completes a password reset: the submitted code is checked
// under the same match-and-expiry rule as verification, then the new
// password is hashed and stored. AccountStatus is never touched here.
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var body ForgotPasswordReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, utils.ErrNotFound)
			return
		}
		respondError(c, err)
		return
	}

	if err := a.OTPManager.Verify(&user, body.OTP); err != nil {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), 10)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := a.DB.Model(&user).Update("password", string(hash)).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
