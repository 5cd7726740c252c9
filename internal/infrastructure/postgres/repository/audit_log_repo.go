package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAuditLogRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditLogRepository(db *gorm.DB) *DefaultAuditLogRepository {
	return &DefaultAuditLogRepository{DB: db}
}

func (r *DefaultAuditLogRepository) CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error {
	return r.DB.WithContext(ctx).Omit("Actor").Create(mappers.ToGORMAuditLog(entry)).Error
}

func (r *DefaultAuditLogRepository) ListAuditLogs(ctx context.Context, filter domain.AuditLogFilter) ([]*domain.AuditLog, int64, error) {
	if filter.ActorID != "" && !validID(filter.ActorID) {
		// no actor can carry a malformed id
		return []*domain.AuditLog{}, 0, nil
	}
	query := r.DB.WithContext(ctx).Model(&models.AuditLogModel{})
	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.TargetType != "" {
		query = query.Where("target_type = ?", filter.TargetType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.PageSize > 0 {
		query = query.Offset(pageOffset(filter.Page, filter.PageSize)).Limit(filter.PageSize)
	}

	var logModels []models.AuditLogModel
	if err := query.Preload("Actor").Order("created_at DESC").Find(&logModels).Error; err != nil {
		return nil, 0, err
	}
	entries := make([]*domain.AuditLog, 0, len(logModels))
	for i := range logModels {
		entries = append(entries, mappers.ToDomainAuditLog(&logModels[i]))
	}
	return entries, total, nil
}
