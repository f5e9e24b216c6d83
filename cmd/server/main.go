package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/guest-dashboard/internal/http/health"
	"github.com/janisto/guest-dashboard/internal/http/v1/routes"
	"github.com/janisto/guest-dashboard/internal/platform/config"
	"github.com/janisto/guest-dashboard/internal/platform/firebase"
	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
	appmiddleware "github.com/janisto/guest-dashboard/internal/platform/middleware"
	"github.com/janisto/guest-dashboard/internal/platform/respond"
	dashsvc "github.com/janisto/guest-dashboard/internal/service/dashboard"
	usersvc "github.com/janisto/guest-dashboard/internal/service/user"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		applog.LogFatal(context.Background(), "server failed", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	users, closeStore, err := newProfileStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			applog.LogError(context.Background(), "profile store close error", err)
		}
	}()

	handler := newRouter(cfg, routes.Services{
		Users:   users,
		Trips:   dashsvc.NewSampleCatalog(),
		GuestID: cfg.GuestUserID,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
	return serve(ctx, srv)
}

// newProfileStore selects the profile backend named by PROFILE_STORE.
func newProfileStore(ctx context.Context, cfg config.ServerConfig) (usersvc.Service, func() error, error) {
	switch cfg.ProfileStore {
	case config.StoreFirestore:
		clients, err := firebase.InitializeClients(ctx, firebase.ConfigFromServer(cfg))
		if err != nil {
			return nil, nil, fmt.Errorf("firebase: %w", err)
		}
		applog.LogInfo(ctx, "using firestore profile store", zap.String("project", cfg.FirebaseProjectID))
		return usersvc.NewFirestoreStore(clients.Firestore), clients.Close, nil
	case config.StoreMemory:
		applog.LogInfo(ctx, "using in-memory profile store")
		return usersvc.NewMockUserService(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidStore, cfg.ProfileStore)
	}
}

func newRouter(cfg config.ServerConfig, svc routes.Services) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORSAllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only run behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version, cfg.ProfileStore))

	humaCfg := huma.DefaultConfig("Guest Dashboard API", Version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)

	// Advertise CBOR alongside JSON for every operation.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, svc)
	return router
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server) error {
	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err, ok := <-listenErr:
		if ok {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}
