package config

import (
	"errors"
	"fmt"
	"time"
)

// Profile store backends.
const (
	StoreMemory    = "memory"
	StoreFirestore = "firestore"
)

// ErrInvalidStore is returned when PROFILE_STORE names an unknown backend.
var ErrInvalidStore = errors.New("invalid profile store")

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Port                         string   `env:"PORT"                           envDefault:"4000"`
	ProfileStore                 string   `env:"PROFILE_STORE"                  envDefault:"memory"`
	FirebaseProjectID            string   `env:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials string   `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	GuestUserID                  string   `env:"GUEST_USER_ID"                  envDefault:"guest"`
	CORSAllowedOrigins           []string `env:"CORS_ALLOWED_ORIGINS"           envDefault:"*" envSeparator:","`
}

// LoadServer reads ServerConfig from the environment (and an optional .env).
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints env tags cannot express.
func (c ServerConfig) Validate() error {
	switch c.ProfileStore {
	case StoreMemory:
	case StoreFirestore:
		if c.FirebaseProjectID == "" {
			return fmt.Errorf("%w: %s requires FIREBASE_PROJECT_ID", ErrInvalidStore, StoreFirestore)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStore, c.ProfileStore)
	}
	if c.GuestUserID == "" {
		return errors.New("GUEST_USER_ID must not be empty")
	}
	return nil
}

// ClientConfig configures the terminal dashboard.
type ClientConfig struct {
	APIURL string `env:"DASHBOARD_API_URL" envDefault:"http://localhost:4000"`
	// Zero means requests are bounded only by the caller's context.
	Timeout time.Duration `env:"DASHBOARD_API_TIMEOUT" envDefault:"0s"`
}

// LoadClient reads ClientConfig from the environment (and an optional .env).
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := LoadDotEnv(); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Timeout < 0 {
		return cfg, fmt.Errorf("DASHBOARD_API_TIMEOUT must not be negative, got %s", cfg.Timeout)
	}
	return cfg, nil
}
