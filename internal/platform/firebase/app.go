// Package firebase bootstraps the Firebase app that backs the Firestore
// profile store.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/janisto/guest-dashboard/internal/platform/config"
)

// ErrMissingProjectID is returned when no project is configured.
var ErrMissingProjectID = errors.New("firebase project id is required")

// Config holds Firebase configuration.
type Config struct {
	ProjectID                    string
	GoogleApplicationCredentials string // path to service account JSON, optional
}

// ConfigFromServer extracts the Firebase settings from the server config.
func ConfigFromServer(cfg config.ServerConfig) Config {
	return Config{
		ProjectID:                    cfg.FirebaseProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	}
}

// Clients holds initialized Firebase clients.
type Clients struct {
	Firestore *firestore.Client
}

// InitializeClients sets up the Firebase app and its Firestore client.
func InitializeClients(ctx context.Context, cfg Config) (*Clients, error) {
	opts, err := clientOptions(cfg)
	if err != nil {
		return nil, err
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	fc, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &Clients{Firestore: fc}, nil
}

func clientOptions(cfg Config) ([]option.ClientOption, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		creds, err := os.ReadFile(cfg.GoogleApplicationCredentials)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	}
	return opts, nil
}

// Close closes the Firestore client.
func (c *Clients) Close() error {
	if c.Firestore != nil {
		return c.Firestore.Close()
	}
	return nil
}
