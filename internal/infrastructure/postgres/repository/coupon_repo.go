package repository

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultCouponRepository struct {
	DB *gorm.DB
}

func NewDefaultCouponRepository(db *gorm.DB) *DefaultCouponRepository {
	return &DefaultCouponRepository{DB: db}
}

func (r *DefaultCouponRepository) FindActiveCoupon(ctx context.Context, code string, now time.Time) (*domain.Coupon, error) {
	var coupon models.CouponModel
	if err := r.DB.WithContext(ctx).
		Where("code = ?", code).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		First(&coupon).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainCoupon(&coupon), nil
}

type couponOrderCount struct {
	CouponID string
	Count    int64
}

func (r *DefaultCouponRepository) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	var couponModels []models.CouponModel
	if err := r.DB.WithContext(ctx).Order("code ASC").Find(&couponModels).Error; err != nil {
		return nil, err
	}
	if len(couponModels) == 0 {
		return []*domain.Coupon{}, nil
	}

	ids := make([]string, 0, len(couponModels))
	for _, c := range couponModels {
		ids = append(ids, c.ID)
	}
	var counts []couponOrderCount
	if err := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Select("coupon_id, COUNT(*) AS count").
		Where("coupon_id IN ?", ids).
		Group("coupon_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	byCoupon := make(map[string]int64, len(counts))
	for _, c := range counts {
		byCoupon[c.CouponID] = c.Count
	}

	coupons := make([]*domain.Coupon, 0, len(couponModels))
	for i := range couponModels {
		coupon := mappers.ToDomainCoupon(&couponModels[i])
		coupon.OrderCount = byCoupon[coupon.ID]
		coupons = append(coupons, coupon)
	}
	return coupons, nil
}

// UpsertCoupon never overwrites the used counter of an existing coupon.
func (r *DefaultCouponRepository) UpsertCoupon(ctx context.Context, coupon *domain.Coupon) error {
	db := r.DB.WithContext(ctx)
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
		return db.Create(mappers.ToGORMCoupon(coupon)).Error
	}
	if !validID(coupon.ID) {
		return domain.ErrNotFound
	}
	res := db.Model(&models.CouponModel{}).
		Where("id = ?", coupon.ID).
		Updates(map[string]any{
			"code":        coupon.Code,
			"type":        coupon.Type,
			"value":       coupon.Value,
			"starts_at":   coupon.StartsAt,
			"ends_at":     coupon.EndsAt,
			"min_spend":   coupon.MinSpend,
			"usage_limit": coupon.UsageLimit,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
