package main

import (
	"fmt"
	"os"
)

// Config holds all service configuration. Everything the core needs,
// including SMTP credentials and the auth secret, is loaded here and passed
// into components at construction time.
type Config struct {
	Env  string
	Port string

	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	AuthSecret string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	// ArtworkBucket selects the S3 store when set; otherwise artwork blobs
	// live under ArtworkDir on the local filesystem.
	ArtworkBucket string
	ArtworkDir    string

	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	Currency       string
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort, c.PostgresSSLMode)
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		AuthSecret: os.Getenv("AUTH_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: getEnv("SMTP_PORT", "587"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		ArtworkBucket: os.Getenv("ARTWORK_BUCKET"),
		ArtworkDir:    getEnv("ARTWORK_DIR", "./uploads/artwork"),

		CompanyName:    getEnv("COMPANY_NAME", "StitchWorks Garments"),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "42 Mill Road, Colombo"),
		CompanyPhone:   getEnv("COMPANY_PHONE", "+94 11 234 5678"),
		Currency:       getEnv("CURRENCY", "Rs."),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" || cfg.PostgresHost == "" {
		return nil, fmt.Errorf("database config incomplete")
	}
	if cfg.AuthSecret == "" {
		return nil, fmt.Errorf("AUTH_SECRET not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
