package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainAuditLog(m *models.AuditLogModel) *domain.AuditLog {
	entry := &domain.AuditLog{
		ID:         m.ID,
		ActorID:    m.ActorID,
		Action:     m.Action,
		TargetType: m.TargetType,
		TargetID:   m.TargetID,
		Meta:       map[string]any(m.Meta),
		CreatedAt:  m.CreatedAt,
	}
	if m.Actor != nil {
		entry.Actor = ToDomainUser(m.Actor)
	}
	return entry
}

func ToGORMAuditLog(entry *domain.AuditLog) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:         entry.ID,
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Meta:       datatypes.JSONMap(entry.Meta),
		CreatedAt:  entry.CreatedAt,
	}
}
