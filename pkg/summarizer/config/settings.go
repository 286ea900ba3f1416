package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds per-run options taken from the environment.
type Settings struct {
	// ConfigPath is a configuration file replacing the built-in one.
	ConfigPath string
	// Quarter fixes the quarter label for every row of the input.
	Quarter string
	// Workers is the number of goroutines parsing rows.
	Workers int
	// Verbose enables debug logging.
	Verbose bool
}

// LoadSettings reads settings from environment variables after loading any
// of the given .env files (".env" when none are given). Missing .env files are
// ignored and variables already set in the environment take precedence.
func LoadSettings(envFiles ...string) Settings {
	_ = godotenv.Load(envFiles...)

	return Settings{
		ConfigPath: getEnv("AAA_CONFIG", ""),
		Quarter:    getEnv("AAA_QUARTER", ""),
		Workers:    getEnvAsInt("AAA_WORKERS", 1),
		Verbose:    getEnvAsBool("AAA_VERBOSE", false),
	}
}

// Resolve loads the configuration file named by the settings, or the
// built-in configuration when none is set.
func (s Settings) Resolve() (*Config, error) {
	if s.ConfigPath == "" {
		return Default()
	}
	return Load(s.ConfigPath)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
