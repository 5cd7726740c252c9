package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultPageRepository struct {
	DB *gorm.DB
}

func NewDefaultPageRepository(db *gorm.DB) *DefaultPageRepository {
	return &DefaultPageRepository{DB: db}
}

func (r *DefaultPageRepository) ListPages(ctx context.Context) ([]*domain.Page, error) {
	var pageModels []models.PageModel
	if err := r.DB.WithContext(ctx).Order("updated_at DESC").Find(&pageModels).Error; err != nil {
		return nil, err
	}
	pages := make([]*domain.Page, 0, len(pageModels))
	for i := range pageModels {
		pages = append(pages, mappers.ToDomainPage(&pageModels[i]))
	}
	return pages, nil
}

func (r *DefaultPageRepository) GetPageByID(ctx context.Context, id string) (*domain.Page, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	var page models.PageModel
	if err := r.DB.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainPage(&page), nil
}

func (r *DefaultPageRepository) GetPageBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var page models.PageModel
	if err := r.DB.WithContext(ctx).First(&page, "slug = ?", slug).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainPage(&page), nil
}

func (r *DefaultPageRepository) UpsertPage(ctx context.Context, page *domain.Page) error {
	if page.ID == "" {
		page.ID = uuid.New().String()
	} else if !validID(page.ID) {
		return domain.ErrNotFound
	}
	return r.DB.WithContext(ctx).Save(mappers.ToGORMPage(page)).Error
}

func (r *DefaultPageRepository) DeletePage(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Delete(&models.PageModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
