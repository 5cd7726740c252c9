package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type CouponModel struct {
	ID         string            `gorm:"primaryKey;type:uuid"`
	Code       string            `gorm:"uniqueIndex;not null"`
	Type       domain.CouponType `gorm:"type:varchar(16);not null"`
	Value      int64             `gorm:"not null"`
	StartsAt   *time.Time
	EndsAt     *time.Time
	MinSpend   *int64
	UsageLimit *int
	Used       int          `gorm:"not null;default:0"`
	Orders     []OrderModel `gorm:"foreignKey:CouponID;references:ID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CouponModel) TableName() string {
	return "coupons"
}
