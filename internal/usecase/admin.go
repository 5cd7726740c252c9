package usecase

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

// authorize checks actor against roles before any side effect.
func authorize(actor *domain.Principal, roles []domain.Role) error {
	if !actor.Authenticated() {
		return domain.ErrUnauthorized
	}
	return domain.RequireRole(roles, actor.Role)
}

// AdminEffects are the follow-ups of every successful back-office write:
// an audit entry and a content invalidation event.
type AdminEffects struct {
	Audit       domain.AuditRecorder
	Invalidator domain.ContentInvalidator
}

type auditEntry struct {
	action     string
	targetType string
	targetID   string
	meta       map[string]any
}

func (e AdminEffects) commit(ctx context.Context, actor *domain.Principal, entry auditEntry, paths ...string) {
	if e.Audit != nil {
		e.Audit.Record(ctx, domain.AuditLog{
			ActorID:    actor.UserID,
			Action:     entry.action,
			TargetType: entry.targetType,
			TargetID:   entry.targetID,
			Meta:       entry.meta,
		})
	}
	if e.Invalidator != nil && len(paths) > 0 {
		e.Invalidator.Invalidate(paths...)
	}
}

func defaultPage(page, pageSize, fallback int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = fallback
	}
	return page, pageSize
}
