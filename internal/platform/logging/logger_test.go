package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/guest-dashboard/internal/platform/timeutil"
)

// captureOutput redirects stdout while logFn runs against a fresh logger and returns the raw output.
func captureOutput(t *testing.T, logFn func(*zap.Logger)) string {
	t.Helper()

	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	origStderr := os.Stderr
	os.Stdout = w
	os.Stderr = w
	defer func() {
		os.Stdout = origStdout
		os.Stderr = origStderr
	}()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	line := captureOutput(t, logFn)
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON: %v", err)
	}
	return payload
}

// resetLoggerForTest clears the singleton state so tests can capture fresh log output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
	level.SetLevel(zapcore.InfoLevel)
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("GET /api/user")
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatalf("did not expect level field")
	}
	if msg, ok := payload["message"].(string); !ok || msg != "GET /api/user" {
		t.Fatalf("expected message 'GET /api/user', got %v", payload["message"])
	}

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp field to be a string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(timeutil.RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
}

func TestSugarLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		Sugar().Warnw("profile not persisted", "status", 503)
	})

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
	if status, ok := payload["status"].(float64); !ok || status != 503 {
		t.Fatalf("expected status 503, got %v", payload["status"])
	}
}

type captureArrayEncoder struct {
	zapcore.PrimitiveArrayEncoder
	values []string
}

func (c *captureArrayEncoder) AppendString(s string) { c.values = append(c.values, s) }

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(99), "DEFAULT"},
	}

	for _, tt := range tests {
		enc := &captureArrayEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestEncodeTimeMicrosFormatsUTC(t *testing.T) {
	enc := &captureArrayEncoder{}
	loc := time.FixedZone("UTC+2", 2*60*60)
	encodeTimeMicros(time.Date(2025, 11, 15, 12, 0, 0, 123456000, loc), enc)

	if len(enc.values) != 1 {
		t.Fatalf("expected one value, got %v", enc.values)
	}
	if enc.values[0] != "2025-11-15T10:00:00.123456Z" {
		t.Fatalf("unexpected timestamp %q", enc.values[0])
	}
}

func TestLoggerSingletonBehavior(t *testing.T) {
	resetLoggerForTest()

	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if Sugar().Desugar().Core() != Logger().Core() {
		t.Fatal("expected Logger and Sugar to share the same core")
	}
	if err := Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestLoggerIncludesCallerField(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("caller test")
	})

	caller, ok := payload["caller"].(string)
	if !ok || !strings.Contains(caller, "logger_test.go") {
		t.Fatalf("expected caller to reference logger_test.go, got %v", payload["caller"])
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	out := captureOutput(t, func(l *zap.Logger) {
		l.Debug("debug message should not appear")
	})

	if strings.Contains(out, "debug message") {
		t.Fatal("debug level messages should not be logged by default")
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv(LevelEnv, "debug")
	defer resetLoggerForTest()

	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Debug("profile load skipped")
	})

	if got := payload["severity"]; got != "DEBUG" {
		t.Fatalf("expected severity DEBUG, got %v", got)
	}
	if Level() != zapcore.DebugLevel {
		t.Fatalf("expected debug level, got %s", Level())
	}
}

func TestSetLevelAtRuntime(t *testing.T) {
	defer resetLoggerForTest()

	out := captureOutput(t, func(l *zap.Logger) {
		SetLevel(zapcore.ErrorLevel)
		l.Warn("dropped")
		l.Error("kept")
	})

	if strings.Contains(out, "dropped") {
		t.Fatalf("warn should be filtered at error level, got %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("expected error entry, got %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"":        zapcore.InfoLevel,
		"debug":   zapcore.DebugLevel,
		" WARN ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for raw, want := range tests {
		if got := parseLevel(raw); got != want {
			t.Errorf("parseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}
