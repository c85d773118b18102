package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file when one is present. Missing
// files are fine; production supplies the environment directly.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
