package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultMatchRepository struct {
	DB *gorm.DB
}

func NewDefaultMatchRepository(db *gorm.DB) *DefaultMatchRepository {
	return &DefaultMatchRepository{DB: db}
}

func (r *DefaultMatchRepository) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]*domain.Match, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.MatchModel{})
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Competition != "" {
		query = query.Where("competition ILIKE ?", "%"+filter.Competition+"%")
	}
	if filter.From != nil {
		query = query.Where("event_date >= ?", *filter.From)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.PageSize > 0 {
		query = query.Offset(pageOffset(filter.Page, filter.PageSize)).Limit(filter.PageSize)
	}

	order := "event_date DESC"
	if filter.Ascending {
		order = "event_date ASC"
	}
	var matchModels []models.MatchModel
	if err := query.Order(order).Find(&matchModels).Error; err != nil {
		return nil, 0, err
	}
	matches := make([]*domain.Match, 0, len(matchModels))
	for i := range matchModels {
		matches = append(matches, mappers.ToDomainMatch(&matchModels[i]))
	}
	return matches, total, nil
}

func (r *DefaultMatchRepository) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	var match models.MatchModel
	if err := r.DB.WithContext(ctx).First(&match, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainMatch(&match), nil
}

func (r *DefaultMatchRepository) UpsertMatch(ctx context.Context, match *domain.Match) error {
	if match.ID == "" {
		match.ID = uuid.New().String()
	} else if !validID(match.ID) {
		return domain.ErrNotFound
	}
	return r.DB.WithContext(ctx).Save(mappers.ToGORMMatch(match)).Error
}

func (r *DefaultMatchRepository) DeleteMatch(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Delete(&models.MatchModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
