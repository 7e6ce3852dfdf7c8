package ogcard

import (
	"fmt"
	"log"
	"os"
)

// VersionedImageURL builds the fingerprint-qualified card URL for a
// normalized content path. Responses under such URLs cache forever.
func VersionedImageURL(path, fingerprint string) string {
	return fmt.Sprintf("/og%s.jpg?v=%s", path, fingerprint)
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("ogcard: required environment variable %s is not set", key)
	}
	return v
}
