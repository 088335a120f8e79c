package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is bumped whenever .env.example gains or renames
// a required variable
const ExpectedEnvSchemaVersion = "2.0"

// RequiredEnvVars must be non-empty before the engine starts
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// placeholder values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var errSchemaVersionUnset = errors.New("ENV_SCHEMA_VERSION is not set")

// envCheck produces a warning message when the environment looks suspicious
type envCheck func() (string, bool)

var envChecks = []envCheck{
	func() (string, bool) {
		return "DB_PASSWORD still holds the .env.example placeholder; set a real password",
			os.Getenv("DB_PASSWORD") == exampleDBPassword
	},
	func() (string, bool) {
		return "API_KEY still holds the .env.example placeholder; generate one with: openssl rand -hex 32",
			os.Getenv("API_KEY") == exampleAPIKey
	},
	func() (string, bool) {
		return "LOG_FORMAT should be json when ENVIRONMENT=prod",
			os.Getenv("ENVIRONMENT") == "prod" && os.Getenv("LOG_FORMAT") != "json"
	},
	func() (string, bool) {
		path := getEnv("SCORING_CONFIG_PATH", ConfigPathScoring)
		if path == "" {
			return "", false
		}
		_, err := os.Stat(path)
		return fmt.Sprintf("SCORING_CONFIG_PATH %s cannot be read; falling back to built-in scoring defaults", path), err != nil
	},
}

// ValidateEnv fails when the schema version is wrong or a required variable is empty
func ValidateEnv() error {
	switch version := os.Getenv("ENV_SCHEMA_VERSION"); version {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("%w (expected %s); copy the field from .env.example", errSchemaVersionUnset, ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; compare your .env with .env.example",
			ExpectedEnvSchemaVersion, version)
	}

	missing := make([]string, 0, len(RequiredEnvVars))
	for _, key := range RequiredEnvVars {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then collects non-fatal warnings
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, check := range envChecks {
		if msg, warn := check(); warn {
			warnings = append(warnings, msg)
		}
	}
	return warnings, nil
}
