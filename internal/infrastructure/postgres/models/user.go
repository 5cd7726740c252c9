package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type UserModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string
	Role         domain.Role       `gorm:"type:varchar(32);not null;default:USER"`
	Status       domain.UserStatus `gorm:"type:varchar(16);not null;default:ACTIVE"`
	PasswordHash string            `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
