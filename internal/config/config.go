package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingProject     = errors.New("PROJECT_ID is required")
	ErrMissingCredentials = errors.New("credentials file is required")
)

type Config struct {
	Server ServerConfig
	Vertex VertexConfig
	Retry  RetryConfig
}

type ServerConfig struct {
	Port              string
	Env               string
	GenerationTimeout time.Duration
}

type VertexConfig struct {
	ProjectID          string
	Location           string
	Model              string
	CredentialsFile    string
	RequireCredentials bool
}

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "3000"),
			Env:               getEnv("ENV", "development"),
			GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", "60s"),
		},
		Vertex: VertexConfig{
			ProjectID:          getEnv("PROJECT_ID", ""),
			Location:           getEnv("LOCATION", "us-central1"),
			Model:              TrimQuotes(getEnv("MODEL", "gemini-2.5-flash")),
			CredentialsFile:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			RequireCredentials: getEnvAsBool("REQUIRE_CREDENTIALS", true),
		},
		Retry: RetryConfig{
			MaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 5),
			InitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "1s"),
		},
	}
}

// Validate reports configuration the process cannot start without.
func (c *Config) Validate() error {
	if c.Vertex.ProjectID == "" {
		return ErrMissingProject
	}

	if c.Vertex.CredentialsFile == "" {
		if c.Vertex.RequireCredentials {
			return fmt.Errorf("%w: set GOOGLE_APPLICATION_CREDENTIALS", ErrMissingCredentials)
		}
		return nil
	}

	if _, err := os.Stat(c.Vertex.CredentialsFile); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMissingCredentials, c.Vertex.CredentialsFile, err)
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// TrimQuotes strips quote characters left around values copied into .env files.
func TrimQuotes(value string) string {
	return strings.Trim(strings.TrimSpace(value), `"'`)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
