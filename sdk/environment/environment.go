// Package environment provides utilities for managing environment variables
// and configuration loading with support for namespacing and defaults.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env files. With no paths it
// reads .env from the working directory. Variables already present in the
// process environment are never overwritten.
//
// Example:
//
//	// Load from .env in current directory
//	if err := LoadEnv(); err != nil {
//	    log.Printf("Warning: .env file not found: %v", err)
//	}
//
//	// Load a base file and a local override
//	LoadEnv(".env", ".env.local")
func LoadEnv(paths ...string) error {
	return godotenv.Load(paths...)
}

// GetEnvOrDefault retrieves an environment variable value, returning a fallback
// value if the variable is not set.
//
// Example:
//
//	port := GetEnvOrDefault("PORT", "8080")
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix constructs a namespaced environment variable key by
// combining a prefix with the key name using an underscore. If no prefix is
// provided, it returns the key unchanged.
//
// Example:
//
//	key := GetEnvKeyPrefix("DASHBOARD", "PG_DATABASE_URL")
//	// Returns: "DASHBOARD_PG_DATABASE_URL"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a namespaced environment variable value,
// returning a fallback value if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

// IsDevelopment reports whether the namespaced ENVIRONMENT variable is set
// to "development".
func IsDevelopment(prefix string) bool {
	return GetPrefixEnvOrDefault(prefix, "ENVIRONMENT", "production") == "development"
}
