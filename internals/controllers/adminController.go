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

type AdminController struct {
	DB           *gorm.DB
	Config       *config.Config
	TokenManager *utils.TokenManager
}

func NewAdminController(db *gorm.DB, cfg *config.Config, tokenManager *utils.TokenManager) *AdminController {
	return &AdminController{
		DB:           db,
		Config:       cfg,
		TokenManager: tokenManager,
	}
}

// Login authenticates an admin. Records that are not flagged both IsAdmin
// and IsActive are refused before the password is even checked. The issued
// token carries the elevated-role claim and the shorter admin lifetime.
func (a *AdminController) Login(c *gin.Context) {
	var body LoginReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var admin models.Admin
	if err := a.DB.Where("email = ?", body.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, utils.ErrForbidden)
			return
		}
		respondError(c, err)
		return
	}

	if !admin.Authorized() {
		respondError(c, utils.ErrForbidden)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(body.Password)); err != nil {
		respondError(c, utils.ErrInvalidCredentials)
		return
	}

	token, err := a.TokenManager.CreateAdminToken(admin.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin login successful", "token": token})
}

type RegisterAdminReqBody struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// Register creates a new admin. The route sits behind RequireAdmin, so
// only an already-authenticated admin reaches this point. Accounts on the
// trusted domain are activated immediately; everyone else starts inactive
// and must be activated out-of-band.
func (a *AdminController) Register(c *gin.Context) {
	var body RegisterAdminReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	var existing models.Admin
	err := a.DB.Where("email = ?", body.Email).First(&existing).Error
	if err == nil {
		respondError(c, utils.ErrConflict)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), 10)
	if err != nil {
		respondError(c, err)
		return
	}

	admin := models.Admin{
		Username:    body.Username,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Password:    string(hash),
		IsAdmin:     true,
		IsActive:    a.Config.TrustedEmail(body.Email),
	}

	if err := a.DB.Create(&admin).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully.", "adminId": admin.ID})
}

// Me returns the authenticated admin's own record.
func (a *AdminController) Me(c *gin.Context) {
	admin, _ := c.Get("admin")
	ad := admin.(models.Admin)

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "user": ad.Public()})
}

// NewRequests lists every user still waiting for activation so an admin
// can review them.
func (a *AdminController) NewRequests(c *gin.Context) {
	var pending []models.User
	if err := a.DB.Where("status = ?", models.StatusPending).Find(&pending).Error; err != nil {
		respondError(c, err)
		return
	}

	users := make([]models.PublicUser, 0, len(pending))
	for i := range pending {
		users = append(users, pending[i].Public())
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
