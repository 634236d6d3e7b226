package controllers

import (
	"errors"
	"net/http"

	"github.com/Typical-techno/investigation-backend/internals/config"
	"github.com/Typical-techno/investigation-backend/internals/models"
	"github.com/Typical-techno/investigation-backend/internals/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB           *gorm.DB
	Config       *config.Config
	TokenManager *utils.TokenManager
	OTPManager   *utils.OTPManager
}

func NewAuthController(db *gorm.DB, cfg *config.Config, tokenManager *utils.TokenManager, otpManager *utils.OTPManager) *AuthController {
	return &AuthController{
		DB:           db,
		Config:       cfg,
		TokenManager: tokenManager,
		OTPManager:   otpManager,
	}
}

type SignupReqBody struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	Username    string `json:"username" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Designation string `json:"designation"`
	Station     string `json:"station"`
}

// Signup creates a User directly. The account starts Pending and only OTP
// verification can activate it.
func (a *AuthController) Signup(c *gin.Context) {
	var body SignupReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	if err := a.findDuplicate(body.Email, body.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		respondError(c, err)
		return
	}

	newUser := models.User{
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Username:    body.Username,
		Designation: body.Designation,
		Station:     body.Station,
		Password:    string(hash),
		Status:      models.StatusPending,
	}

	if err := a.DB.Create(&newUser).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

type LoginReqBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user by email and password. The response never
// distinguishes an unknown email from a wrong password. A Pending account
// with correct credentials is refused without a token.
func (a *AuthController) Login(c *gin.Context) {
	var body LoginReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}

	var user models.User
	if err := a.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, utils.ErrInvalidCredentials)
			return
		}
		respondError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		respondError(c, utils.ErrInvalidCredentials)
		return
	}

	if !user.IsActive() {
		respondError(c, utils.ErrApprovalRequired)
		return
	}

	token, err := a.TokenManager.CreateUserToken(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public(), "token": token})
}

// Me returns the caller's own profile. RequireAuth has already resolved
// and vetted the user.
func (a *AuthController) Me(c *gin.Context) {
	user, _ := c.Get("user")
	u := user.(models.User)

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "user": u.Public()})
}

// findDuplicate reports ErrConflict when a user already holds the email,
// or the phone number when the wider duplicate scope is configured.
func (a *AuthController) findDuplicate(email, phoneNumber string) error {
	query := a.DB.Where("email = ?", email)
	if a.Config.DuplicateCheckPhone && phoneNumber != "" {
		query = a.DB.Where("email = ? OR phone_number = ?", email, phoneNumber)
	}

	var existing models.User
	err := query.First(&existing).Error
	if err == nil {
		return utils.ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
