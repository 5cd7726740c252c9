package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user models.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainUser(&user), nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if !validID(userID) {
		return nil, domain.ErrNotFound
	}
	var user models.UserModel
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainUser(&user), nil
}
