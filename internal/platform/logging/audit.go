package logging

import (
	"context"

	"go.uber.org/zap"
)

// Audit results.
const (
	AuditSuccess = "success"
	AuditFailure = "failure"
)

// AuditEvent describes a write to a guest-owned resource.
type AuditEvent struct {
	Action       string // "replace", "read", ...
	UserID       string
	ResourceType string
	ResourceID   string
	Result       string
	Details      map[string]any
}

// LogAuditEvent logs a structured audit event for a guest resource write.
func LogAuditEvent(ctx context.Context, ev AuditEvent) {
	LoggerFromContext(ctx).Info("audit event",
		zap.String("audit.action", ev.Action),
		zap.String("audit.user_id", ev.UserID),
		zap.String("audit.resource_type", ev.ResourceType),
		zap.String("audit.resource_id", ev.ResourceID),
		zap.String("audit.result", ev.Result),
		zap.Any("audit.details", ev.Details),
	)
}
