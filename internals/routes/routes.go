package routes

import (
	"github.com/Typical-techno/investigation-backend/internals/config"
	"github.com/Typical-techno/investigation-backend/internals/controllers"
	"github.com/Typical-techno/investigation-backend/internals/middleware"
	"github.com/Typical-techno/investigation-backend/internals/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the HTTP surface. All collaborators are built here
// from the injected config and handed to the controllers; nothing reads
// the environment past this point.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))

	emailManager := utils.NewEmailManager(&utils.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		AppName:  cfg.AppName,
	})

	tokenManager := utils.NewTokenManager(cfg.JWTSecret, cfg.UserTokenTTL, cfg.AdminTokenTTL)
	otpManager := utils.NewOTPManager(db, emailManager, cfg.OTPTTL)

	return SetupRouterWith(r, db, cfg, tokenManager, otpManager)
}

// SetupRouterWith registers the routes on a prepared engine with explicit
// collaborators. Tests use it to swap in a stub notifier.
func SetupRouterWith(r *gin.Engine, db *gorm.DB, cfg *config.Config, tokenManager *utils.TokenManager, otpManager *utils.OTPManager) *gin.Engine {
	authMiddleware := middleware.NewRequireAuthMiddleware(db, tokenManager)
	authCtrl := controllers.NewAuthController(db, cfg, tokenManager, otpManager)
	adminCtrl := controllers.NewAdminController(db, cfg, tokenManager)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "active",
			"message": "Investigation-Backend API is running",
		})
	})

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/request-otp", authCtrl.RequestOTP)
		auth.POST("/verify-otp", authCtrl.VerifyOTP)
		auth.POST("/forgot-otp", authCtrl.ResendOTP)
		auth.POST("/forgot-pass", authCtrl.ForgotPassword)

		auth.GET("/me", authMiddleware.RequireAuth, authCtrl.Me)
	}

	admin := r.Group("/api/v1/admin")
	{
		admin.POST("/admin-login", adminCtrl.Login)

		admin.POST("/register-admin", authMiddleware.RequireAdmin, adminCtrl.Register)
		admin.GET("/me", authMiddleware.RequireAdmin, adminCtrl.Me)
		admin.GET("/new-request", authMiddleware.RequireAdmin, adminCtrl.NewRequests)
	}

	return r
}
