package logging

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withProjectID(t *testing.T, projectID string) {
	t.Helper()
	orig := cachedProjectID
	cachedProjectID = projectID
	projectIDOnce = sync.Once{}
	projectIDOnce.Do(func() {})
	t.Cleanup(func() {
		cachedProjectID = orig
		projectIDOnce = sync.Once{}
	})
}

func TestAccessLoggerUsesRequestLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPut, "/api/user", nil)
	req = req.WithContext(contextWithLogger(req.Context(), zap.New(core)))
	access.ServeHTTP(httptest.NewRecorder(), req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected log message: %s", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusTeapot) {
		t.Fatalf("expected status 418, got %v", fields["status"])
	}
	if fields["method"] != http.MethodPut || fields["path"] != "/api/user" {
		t.Fatalf("unexpected method/path: %v", fields)
	}
	if _, ok := fields["duration"]; !ok {
		t.Fatalf("expected duration field, got %+v", fields)
	}
}

func TestRequestLoggerUsesRequestIDAsTraceID(t *testing.T) {
	withProjectID(t, "")

	var traceID *string
	h := chimiddleware.RequestID(RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set(chimiddleware.RequestIDHeader, "req-123")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if traceID == nil || *traceID != "req-123" {
		t.Fatalf("expected trace ID req-123, got %v", traceID)
	}
}

func TestRequestLoggerWithTraceHeader(t *testing.T) {
	withProjectID(t, "test-project")

	var traceID *string
	h := RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set(traceparentHeader, "00-ab42124a3c573678d4d8b21ba52df3bf-d21f7bc17caa5aba-01")
	h.ServeHTTP(httptest.NewRecorder(), req)

	want := "projects/test-project/traces/ab42124a3c573678d4d8b21ba52df3bf"
	if traceID == nil || *traceID != want {
		t.Fatalf("expected trace ID %s, got %v", want, traceID)
	}
}
