package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
)

func ToDomainCoupon(m *models.CouponModel) *domain.Coupon {
	return &domain.Coupon{
		ID:         m.ID,
		Code:       m.Code,
		Type:       m.Type,
		Value:      m.Value,
		StartsAt:   m.StartsAt,
		EndsAt:     m.EndsAt,
		MinSpend:   m.MinSpend,
		UsageLimit: m.UsageLimit,
		Used:       m.Used,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToGORMCoupon(c *domain.Coupon) *models.CouponModel {
	return &models.CouponModel{
		ID:         c.ID,
		Code:       c.Code,
		Type:       c.Type,
		Value:      c.Value,
		StartsAt:   c.StartsAt,
		EndsAt:     c.EndsAt,
		MinSpend:   c.MinSpend,
		UsageLimit: c.UsageLimit,
		Used:       c.Used,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
