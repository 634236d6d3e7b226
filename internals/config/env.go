package config

import (
	"log"
	"os"
	"strconv"
)

// GetEnv fetches a key or returns an empty string.
// Critical env vars (secrets, connection strings) should use this function.
func GetEnv(key string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	log.Printf("Critical: Environment variable %s not set\n", key)
	return ""
}

// GetEnvAsStr fetches a key or returns a fallback value.
func GetEnvAsStr(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvAsInt fetches a key as integer, enforcing positivity when the
// ensurePositive flag is set, or returns the fallback value.
func GetEnvAsInt(key string, fallback int, ensurePositive bool) int {
	if valueStr, ok := os.LookupEnv(key); ok {
		if value, err := strconv.Atoi(valueStr); err == nil {
			if ensurePositive && value <= 0 {
				log.Printf("Warning: Environment variable %s is not positive, using fallback value\n", key)
				return fallback
			}
			return value
		}
		log.Printf("Warning: Environment variable %s is not an integer, using fallback value\n", key)
	}
	return fallback
}

// GetEnvAsBool fetches a key as a boolean ("true"/"false", "1"/"0"), or
// returns the fallback value.
func GetEnvAsBool(key string, fallback bool) bool {
	if valueStr, ok := os.LookupEnv(key); ok {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
		log.Printf("Warning: Environment variable %s is not a boolean, using fallback value\n", key)
	}
	return fallback
}
