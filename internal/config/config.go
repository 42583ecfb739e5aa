package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// Session tokens issued after OTP verification.
	SessionJWTSecret string
	SessionTTL       time.Duration

	// OTP login flow.
	OTPLength      int
	OTPTTL         time.Duration
	OTPMaxAttempts int

	// Email delivery: "sendgrid", "ses" or "log" (dev).
	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	AWSRegion         string
	SESFromEmail      string
	SESFromName       string
	SupportEmail      string

	// Report storage and booking references.
	ReportsDir       string
	BookingRefPrefix string

	CORSAllowedOrigins []string

	// Per-IP rate limit on the OTP send endpoint.
	OTPRateLimit float64
	OTPRateBurst int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SessionJWTSecret: getEnv("SESSION_JWT_SECRET", ""),
		SessionTTL:       getEnvAsDuration("SESSION_TTL", 24*time.Hour),

		OTPLength:      getEnvAsInt("OTP_LENGTH", 6),
		OTPTTL:         getEnvAsDuration("OTP_TTL", 5*time.Minute),
		OTPMaxAttempts: getEnvAsInt("OTP_MAX_ATTEMPTS", 5),

		EmailProvider:     getEnv("EMAIL_PROVIDER", "log"),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "BodyInsight"),
		AWSRegion:         getEnv("AWS_REGION", "ap-south-1"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "BodyInsight"),
		SupportEmail:      getEnv("SUPPORT_EMAIL", "support@bodyinsight.in"),

		ReportsDir:       getEnv("REPORTS_DIR", "reports"),
		BookingRefPrefix: getEnv("BOOKING_REF_PREFIX", "BI-"),

		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),

		OTPRateLimit: getEnvAsFloat("OTP_RATE_LIMIT", 0.2),
		OTPRateBurst: getEnvAsInt("OTP_RATE_BURST", 3),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
