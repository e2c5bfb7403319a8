package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file
// in the working directory is loaded first if present, so local runs can
// keep their settings out of the shell profile.
//
// Recognized variables:
//
//	ADDRESS              bind address (e.g. ":3000")
//	JWT_SECRET           token signing key
//	TOKEN_TTL            token lifetime, time.ParseDuration format
//	GIN_MODE             gin run mode
//	CORS_ALLOWED_ORIGINS comma-separated origins
//	SEED_DEMO_DATA       "true"/"false"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	config.EndpointAddr = getEnv("ADDRESS", config.EndpointAddr)
	config.SecretKey = getEnv("JWT_SECRET", config.SecretKey)
	config.GinMode = getEnv("GIN_MODE", config.GinMode)
	config.CORSAllowedOrigins = getEnv("CORS_ALLOWED_ORIGINS", config.CORSAllowedOrigins)

	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}

	if v, ok := os.LookupEnv("SEED_DEMO_DATA"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.SeedDemoData = b
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
