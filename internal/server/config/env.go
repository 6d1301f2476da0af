package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration values from environment variables.
//
// Supported variables:
//
//	ADDRESS         HTTP bind address (e.g., ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	SECRET_KEY      JWT HMAC secret key
//	TOKEN_VALIDITY  session token validity (Go duration, e.g. "24h")
//	OTP_VALIDITY    verification code validity (Go duration, e.g. "5m")
//	EMAIL_API_KEY   Resend API key
//	EMAIL_SENDER    mail From address
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("OTP_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.OtpValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("EMAIL_API_KEY"); ok {
		config.MailAPIKey = v
	}
	if v, ok := os.LookupEnv("EMAIL_SENDER"); ok {
		config.MailSender = v
	}
}
