package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// StoreConfig holds object-store connection details. Two buckets are
// used: one for original documents and one for extracted text.
type StoreConfig struct {
	Endpoint       string
	Region         string
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	DocumentBucket string
	ExtractBucket  string
}

// ModelConfig describes the local model endpoint.
type ModelConfig struct {
	Host  string
	Port  string
	Model string
}

// BaseURL returns the root URL of the model endpoint.
func (m ModelConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%s", m.Host, m.Port)
}

// Config is the explicit configuration passed to every component at
// construction. There is no package-level mutable state.
type Config struct {
	Store      StoreConfig
	Model      ModelConfig
	ListenAddr string
}

// Load reads the optional .env file and assembles the configuration
// from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded, continuing with environment variables.", "error", err)
	}

	cfg := &Config{
		Store: StoreConfig{
			Endpoint:       GetEnv("S3_ENDPOINT", "s3.amazonaws.com"),
			Region:         GetEnv("AWS_REGION", "us-east-1"),
			AccessKey:      GetEnv("AWS_ACCESS_KEY_ID", ""),
			SecretKey:      GetEnv("AWS_SECRET_ACCESS_KEY", ""),
			UseSSL:         GetEnv("S3_USE_SSL", "true") != "false",
			DocumentBucket: GetEnv("AWS_BUCKET_NAME", ""),
			ExtractBucket:  GetEnv("AWS_EXTRACT_BUCKET", ""),
		},
		Model: ModelConfig{
			Host:  GetEnv("OLLAMA_HOST", "localhost"),
			Port:  GetEnv("OLLAMA_PORT", "11434"),
			Model: GetEnv("OLLAMA_MODEL", "llama3.2"),
		},
		ListenAddr: GetEnv("LISTEN_ADDR", ":8420"),
	}

	if cfg.Store.DocumentBucket == "" {
		slog.Warn("AWS_BUCKET_NAME not set; document upload will fail until configured.")
	}

	return cfg, nil
}
