package firebase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/janisto/guest-dashboard/internal/platform/config"
	"github.com/janisto/guest-dashboard/internal/testutil"
)

func TestClientsCloseReturnsNilWhenFirestoreNil(t *testing.T) {
	c := &Clients{}

	if err := c.Close(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestConfigFromServer(t *testing.T) {
	cfg := ConfigFromServer(config.ServerConfig{
		FirebaseProjectID:            "test-project",
		GoogleApplicationCredentials: "/secrets/sa.json",
	})

	if cfg.ProjectID != "test-project" {
		t.Fatalf("expected ProjectID 'test-project', got %s", cfg.ProjectID)
	}
	if cfg.GoogleApplicationCredentials != "/secrets/sa.json" {
		t.Fatalf("unexpected credentials path %q", cfg.GoogleApplicationCredentials)
	}
}

func TestClientOptionsRequiresProject(t *testing.T) {
	if _, err := clientOptions(Config{}); !errors.Is(err, ErrMissingProjectID) {
		t.Fatalf("expected ErrMissingProjectID, got %v", err)
	}
}

func TestClientOptionsMissingCredentialsFile(t *testing.T) {
	cfg := Config{
		ProjectID:                    "test-project",
		GoogleApplicationCredentials: filepath.Join(t.TempDir(), "missing.json"),
	}
	if _, err := clientOptions(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestClientOptionsWithCredentials(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sa.json")
	if err := os.WriteFile(path, []byte(`{"type":"service_account"}`), 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
	opts, err := clientOptions(Config{ProjectID: "test-project", GoogleApplicationCredentials: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
}

func TestInitializeClientsAgainstEmulator(t *testing.T) {
	testutil.SkipIfEmulatorUnavailable(t)
	testutil.SetupEmulator(t)

	clients, err := InitializeClients(context.Background(), Config{ProjectID: testutil.ProjectID})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	defer func() { _ = clients.Close() }()

	if clients.Firestore == nil {
		t.Fatal("expected firestore client")
	}
}
