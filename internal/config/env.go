package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; real environment variables
// keep precedence over it.
//
// Recognized variables:
//
//	AUTH_API        base URL of the auth service
//	FINANZAS_API    base URL of the records service
//	SESSION_FILE    path of the persisted session state
//	FINANZAS_DEBUG  "true" enables debug logging
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.AuthAPIBase = getEnv("AUTH_API", cfg.AuthAPIBase)
	cfg.FinanzasAPIBase = getEnv("FINANZAS_API", cfg.FinanzasAPIBase)
	cfg.SessionFile = getEnv("SESSION_FILE", cfg.SessionFile)
	if v, err := strconv.ParseBool(getEnv("FINANZAS_DEBUG", "")); err == nil {
		cfg.Debug = v
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
