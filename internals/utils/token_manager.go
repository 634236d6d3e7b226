package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenManager issues and verifies the signed bearer credentials used by
// both user and admin flows. Tokens are stateless: nothing is persisted,
// validity comes from the HS256 signature and the exp claim.
type TokenManager struct {
	// JWTSecret is the secret key used for signing tokens
	JWTSecret string
	// UserTTL is the lifetime of plain user tokens
	UserTTL time.Duration
	// AdminTTL is the (shorter) lifetime of elevated admin tokens
	AdminTTL time.Duration
}

// NewTokenManager initializes and returns a new TokenManager instance
func NewTokenManager(jwtSecret string, userTTL, adminTTL time.Duration) *TokenManager {
	return &TokenManager{
		JWTSecret: jwtSecret,
		UserTTL:   userTTL,
		AdminTTL:  adminTTL,
	}
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	SubjectID uint
	IsAdmin   bool
}

func (tm *TokenManager) sign(subjectID uint, ttl time.Duration, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"sub": subjectID,
		"jti": uuid.New().String(),
		"exp": time.Now().Add(ttl).Unix(),
	}
	if isAdmin {
		claims["isAdmin"] = true
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.JWTSecret))
}

// CreateUserToken issues a session token for a regular user.
func (tm *TokenManager) CreateUserToken(userID uint) (string, error) {
	return tm.sign(userID, tm.UserTTL, false)
}

// CreateAdminToken issues an elevated token carrying the isAdmin claim,
// distinguishable from a plain user token.
func (tm *TokenManager) CreateAdminToken(adminID uint) (string, error) {
	return tm.sign(adminID, tm.AdminTTL, true)
}

// Parse verifies the signature and expiry of a token string and returns
// its claims. Any failure (bad signature, expired, malformed) comes back
// as a single generic error so callers cannot distinguish the causes.
func (tm *TokenManager) Parse(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(tm.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid or expired token")
	}

	// jwt-go parses JSON numbers as float64
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("invalid or expired token")
	}

	isAdmin, _ := claims["isAdmin"].(bool)

	return &TokenClaims{SubjectID: uint(sub), IsAdmin: isAdmin}, nil
}

// BearerToken extracts the credential from an "Authorization: Bearer x"
// header value. Returns an empty string when the header is absent or not
// in bearer form.
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
