package middleware

import (
	"net/http"

	"github.com/Typical-techno/investigation-backend/internals/models"
	"github.com/Typical-techno/investigation-backend/internals/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RequireAuthMiddleware struct {
	DB           *gorm.DB
	TokenManager *utils.TokenManager
}

func NewRequireAuthMiddleware(db *gorm.DB, tokenManager *utils.TokenManager) *RequireAuthMiddleware {
	return &RequireAuthMiddleware{
		DB:           db,
		TokenManager: tokenManager,
	}
}

// RequireAuth guards user-facing routes. A valid signature alone is not
// enough: the subject must still exist (a deleted account's token must not
// authorize) and must have finished verification.
func (m *RequireAuthMiddleware) RequireAuth(c *gin.Context) {
	tokenString := utils.BearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := m.TokenManager.Parse(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var user models.User
	if err := m.DB.First(&user, claims.SubjectID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if !user.IsActive() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account pending approval"})
		return
	}

	c.Set("user", user)
	c.Next()
}

// RequireAdmin guards admin-facing routes. The token must carry the
// elevated-role claim and the resolved record must have both IsAdmin and
// IsActive set.
func (m *RequireAuthMiddleware) RequireAdmin(c *gin.Context) {
	tokenString := utils.BearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is required"})
		return
	}

	claims, err := m.TokenManager.Parse(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if !claims.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var admin models.Admin
	if err := m.DB.First(&admin, claims.SubjectID).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if !admin.Authorized() {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.Set("admin", admin)
	c.Next()
}
