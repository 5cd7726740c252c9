package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCheckoutRepository struct {
	DB *gorm.DB
}

func NewDefaultCheckoutRepository(db *gorm.DB) *DefaultCheckoutRepository {
	return &DefaultCheckoutRepository{DB: db}
}

func (r *DefaultCheckoutRepository) WithinCheckoutTx(ctx context.Context, fn func(tx domain.CheckoutTx) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutTx{db: tx})
	})
}

type checkoutTx struct {
	db *gorm.DB
}

func (t *checkoutTx) CreateOrder(ctx context.Context, order *domain.Order) error {
	return t.db.WithContext(ctx).Omit("Items", "Shipment", "User").Create(mappers.ToGORMOrder(order)).Error
}

// DecrementStock is a conditional update so that concurrent checkouts can
// never drive stock below zero.
func (t *checkoutTx) DecrementStock(ctx context.Context, variantID string, qty int) error {
	res := t.db.WithContext(ctx).Model(&models.ProductVariantModel{}).
		Where("id = ? AND stock >= ?", variantID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (t *checkoutTx) CreateOrderItems(ctx context.Context, items []*domain.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	itemModels := make([]*models.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, mappers.ToGORMOrderItem(item))
	}
	return t.db.WithContext(ctx).Omit("Variant").Create(itemModels).Error
}

func (t *checkoutTx) ClearCart(ctx context.Context, cartID string) error {
	return t.db.WithContext(ctx).Delete(&models.CartItemModel{}, "cart_id = ?", cartID).Error
}

// IncrementCouponUsage refuses to go past a positive usage limit.
func (t *checkoutTx) IncrementCouponUsage(ctx context.Context, couponID string) error {
	res := t.db.WithContext(ctx).Model(&models.CouponModel{}).
		Where("id = ?", couponID).
		Where("usage_limit IS NULL OR usage_limit = 0 OR used < usage_limit").
		Update("used", gorm.Expr("used + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCouponLimitReached
	}
	return nil
}
