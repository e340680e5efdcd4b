// Package config provides configuration for the signaling backend.
package config

import (
	"os"
	"strconv"
)

// Config holds the process-wide configuration. It is built once at startup
// and treated as read-only afterwards.
type Config struct {
	// Server settings
	Port int

	// Twilio REST API credentials
	AccountSID string
	AuthToken  string

	// Capability token signing credentials
	APIKey    string
	APISecret string

	// SID of the TwiML application used for outgoing browser calls
	TwiMLAppSID string

	// Number calls originate from
	PhoneNumber string

	// Publicly reachable base URL, used to build the callback URLs
	// handed to Twilio
	BaseURL string
}

// Load loads configuration from environment variables. Missing credentials
// are not an error here; they surface as configuration errors at the point
// of use.
func Load() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 3000),
		AccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		AuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		APIKey:      getEnv("TWILIO_API_KEY", ""),
		APISecret:   getEnv("TWILIO_API_SECRET", ""),
		TwiMLAppSID: getEnv("TWILIO_TWIML_APP_SID", ""),
		PhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		BaseURL:     getEnv("SERVER_BASE_URL", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
