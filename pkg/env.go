package pkg

import "os"

// Getenv returns the value of the environment variable or defaultValue if
// the variable is not present. An empty value is returned as is.
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}
