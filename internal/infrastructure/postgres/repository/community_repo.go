package repository

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultNewsletterRepository struct {
	DB *gorm.DB
}

func NewDefaultNewsletterRepository(db *gorm.DB) *DefaultNewsletterRepository {
	return &DefaultNewsletterRepository{DB: db}
}

// UpsertSubscriber fills sub with the stored row, whether it was inserted or
// already present.
func (r *DefaultNewsletterRepository) UpsertSubscriber(ctx context.Context, sub *domain.NewsletterSubscriber) error {
	db := r.DB.WithContext(ctx)
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
	}).Create(mappers.ToGORMSubscriber(sub)).Error; err != nil {
		return err
	}

	var stored models.NewsletterSubscriberModel
	if err := db.First(&stored, "email = ?", sub.Email).Error; err != nil {
		return mapErr(err)
	}
	*sub = *mappers.ToDomainSubscriber(&stored)
	return nil
}

func (r *DefaultNewsletterRepository) ListSubscribers(ctx context.Context) ([]*domain.NewsletterSubscriber, error) {
	var subModels []models.NewsletterSubscriberModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&subModels).Error; err != nil {
		return nil, err
	}
	subs := make([]*domain.NewsletterSubscriber, 0, len(subModels))
	for i := range subModels {
		subs = append(subs, mappers.ToDomainSubscriber(&subModels[i]))
	}
	return subs, nil
}

func (r *DefaultNewsletterRepository) CountSubscribersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.NewsletterSubscriberModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}

type DefaultVolunteerRepository struct {
	DB *gorm.DB
}

func NewDefaultVolunteerRepository(db *gorm.DB) *DefaultVolunteerRepository {
	return &DefaultVolunteerRepository{DB: db}
}

func (r *DefaultVolunteerRepository) CreateVolunteer(ctx context.Context, v *domain.Volunteer) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMVolunteer(v)).Error
}

func (r *DefaultVolunteerRepository) ListVolunteers(ctx context.Context) ([]*domain.Volunteer, error) {
	var volunteerModels []models.VolunteerModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&volunteerModels).Error; err != nil {
		return nil, err
	}
	volunteers := make([]*domain.Volunteer, 0, len(volunteerModels))
	for i := range volunteerModels {
		volunteers = append(volunteers, mappers.ToDomainVolunteer(&volunteerModels[i]))
	}
	return volunteers, nil
}

func (r *DefaultVolunteerRepository) UpdateVolunteerStatus(ctx context.Context, id, status string) (*domain.Volunteer, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	db := r.DB.WithContext(ctx)
	res := db.Model(&models.VolunteerModel{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var volunteer models.VolunteerModel
	if err := db.First(&volunteer, "id = ?", id).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainVolunteer(&volunteer), nil
}

func (r *DefaultVolunteerRepository) CountVolunteersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.VolunteerModel{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
