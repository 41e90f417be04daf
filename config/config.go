package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr     string
	AllowedOrigins []string
	PostgresURL    string
	JWTKey         string
	Debug          bool
}

// Load reads the environment, after merging an optional .env file.
// POSTGRES_URL and JWT_KEY are required.
func Load() (Config, error) {
	// Absent .env is fine; the environment may be set directly.
	godotenv.Load()

	cfg := Config{
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		Debug:      os.Getenv("DEBUG") == "true",
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":5000"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.PostgresURL = os.Getenv("POSTGRES_URL")
	if cfg.PostgresURL == "" {
		return Config{}, fmt.Errorf("missing POSTGRES_URL")
	}

	cfg.JWTKey = os.Getenv("JWT_KEY")
	if cfg.JWTKey == "" {
		return Config{}, fmt.Errorf("missing JWT_KEY")
	}

	return cfg, nil
}
