package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/google/uuid"
)

type auditFailureCounter interface {
	RecordAuditFailure(action string)
}

// AuditLogger appends admin actions to the audit trail. Write failures are
// logged and counted but never returned.
type AuditLogger struct {
	repo    domain.AuditLogRepository
	metrics auditFailureCounter
	now     func() time.Time
}

func NewAuditLogger(repo domain.AuditLogRepository, metrics auditFailureCounter) *AuditLogger {
	return &AuditLogger{repo: repo, metrics: metrics, now: time.Now}
}

func (l *AuditLogger) Record(ctx context.Context, entry domain.AuditLog) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = l.now()
	}

	if err := l.repo.CreateAuditLog(ctx, &entry); err != nil {
		slog.Error("failed to record audit log",
			"action", entry.Action,
			"target_type", entry.TargetType,
			"target_id", entry.TargetID,
			"actor_id", entry.ActorID,
			"error", err,
		)
		if l.metrics != nil {
			l.metrics.RecordAuditFailure(entry.Action)
		}
	}
}
