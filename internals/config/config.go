package config

import (
	"strings"
	"time"
)

// Config is the process-wide configuration object, built once at startup
// and injected into components. Secrets are never read ad hoc elsewhere.
type Config struct {
	AppName string
	Port    string
	DBURL   string

	// JWTSecret signs every session token (HS256)
	JWTSecret string
	// UserTokenTTL is the lifetime of tokens issued to regular users.
	// AdminTokenTTL is deliberately shorter to reduce the exposure window
	// of an elevated credential. Both are explicit, reviewed parameters.
	UserTokenTTL  time.Duration
	AdminTokenTTL time.Duration

	// OTPTTL is how long a one-time code stays valid after issuance
	OTPTTL time.Duration
	// TrustedDomain is the pre-vetted email domain suffix ("gov.in").
	// OTP issuance is restricted to it and admin accounts on it are
	// auto-activated.
	TrustedDomain string
	// DuplicateCheckPhone widens the signup duplicate check from
	// email-only to email+phone
	DuplicateCheckPhone bool

	SMTP SMTPSettings

	CORSOrigins     []string
	CleanupInterval time.Duration
}

// SMTPSettings carries the mail credentials for OTP delivery.
type SMTPSettings struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load builds the Config from the environment.
func Load() *Config {
	return &Config{
		AppName: GetEnvAsStr("APP_NAME", "Investigation-Backend"),
		Port:    GetEnvAsStr("PORT", "5000"),
		DBURL:   GetEnv("DB_URL"),

		JWTSecret:     GetEnv("JWT_SECRET_KEY"),
		UserTokenTTL:  time.Duration(GetEnvAsInt("USER_TOKEN_EXPIRATION_MINUTES", 7*24*60, true)) * time.Minute,
		AdminTokenTTL: time.Duration(GetEnvAsInt("ADMIN_TOKEN_EXPIRATION_MINUTES", 60, true)) * time.Minute,

		OTPTTL:              time.Duration(GetEnvAsInt("OTP_EXPIRATION_MINUTES", 5, true)) * time.Minute,
		TrustedDomain:       GetEnvAsStr("TRUSTED_EMAIL_DOMAIN", "gov.in"),
		DuplicateCheckPhone: GetEnvAsBool("DUPLICATE_CHECK_PHONE", true),

		SMTP: SMTPSettings{
			Host:     GetEnvAsStr("SMTP_HOST", "smtp.gmail.com"),
			Port:     GetEnvAsInt("SMTP_PORT", 587, true),
			User:     GetEnv("GMAIL_USER"),
			Password: GetEnv("GMAIL_APP_PASSWORD"),
		},

		CORSOrigins:     splitOrigins(GetEnvAsStr("CORS_ALLOWED_ORIGINS", "*")),
		CleanupInterval: time.Duration(GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 30, true)) * time.Minute,
	}
}

// TrustedEmail reports whether the address belongs to the trusted domain.
func (c *Config) TrustedEmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), c.TrustedDomain)
}

func splitOrigins(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
