package env

import (
	"os"
	"strconv"
	"time"
)

// Get parses an string from the environment variable key parameter. If the environment
// variable is empty, the defaultValue parameter is returned.
func Get(key string, defaultValue string) string {
	r := os.Getenv(key)
	if r == "" {
		return defaultValue
	}

	return r
}

// GetInt parses an int from the environment variable key parameter. If the environment
// variable is empty or fails to parse, the defaultValue parameter is returned.
func GetInt(key string, defaultValue int) int {
	r := os.Getenv(key)
	i, err := strconv.Atoi(r)
	if err != nil {
		return defaultValue
	}

	return i
}

// GetBool parses a bool from the environment variable key parameter. If the environment
// variable is empty or fails to parse, the defaultValue parameter is returned.
func GetBool(key string, defaultValue bool) bool {
	r := os.Getenv(key)
	b, err := strconv.ParseBool(r)
	if err != nil {
		return defaultValue
	}

	return b
}

// GetDuration parses a time.Duration from the environment variable key parameter. If the
// environment variable is empty or fails to parse, the defaultValue parameter is returned.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	r := os.Getenv(key)
	d, err := time.ParseDuration(r)
	if err != nil {
		return defaultValue
	}

	return d
}

// Set sets the environment variable for the key provided using the value provided.
func Set(key string, value string) error {
	return os.Setenv(key, value)
}

// SetBool sets the environment variable to a string formatted bool value
func SetBool(key string, value bool) error {
	return os.Setenv(key, strconv.FormatBool(value))
}

// SetDuration sets the environment variable to a string formatted time.Duration value
func SetDuration(key string, value time.Duration) error {
	return os.Setenv(key, value.String())
}
