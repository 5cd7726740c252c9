package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultMediaRepository struct {
	DB *gorm.DB
}

func NewDefaultMediaRepository(db *gorm.DB) *DefaultMediaRepository {
	return &DefaultMediaRepository{DB: db}
}

func (r *DefaultMediaRepository) ListMedia(ctx context.Context, filter domain.MediaFilter) ([]*domain.Media, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.MediaModel{})
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("url ILIKE ? OR alt ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.PageSize > 0 {
		query = query.Offset(pageOffset(filter.Page, filter.PageSize)).Limit(filter.PageSize)
	}

	var mediaModels []models.MediaModel
	if err := query.Order("created_at DESC").Find(&mediaModels).Error; err != nil {
		return nil, 0, err
	}
	media := make([]*domain.Media, 0, len(mediaModels))
	for i := range mediaModels {
		media = append(media, mappers.ToDomainMedia(&mediaModels[i]))
	}
	return media, total, nil
}

func (r *DefaultMediaRepository) CreateMedia(ctx context.Context, media *domain.Media) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMMedia(media)).Error
}

func (r *DefaultMediaRepository) DeleteMedia(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Delete(&models.MediaModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
