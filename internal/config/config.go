package config

import (
	"fmt"
	"os"
)

type Config struct {
	Addr             string
	DSN              string
	CredentialScheme string
}

// Load reads the service configuration from the environment. DATABASE_URL
// wins when set; otherwise the DSN is assembled from the individual
// DB_* variables. defaultAddr keeps the original listen ports when ADDR
// is not set.
func Load(defaultAddr string) Config {
	return Config{
		Addr:             getenv("ADDR", defaultAddr),
		DSN:              dsnFromEnv(),
		CredentialScheme: os.Getenv("CREDENTIAL_SCHEME"),
	}
}

func dsnFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		getenv("DB_SSLMODE", "disable"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
