package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCartRepository struct {
	DB *gorm.DB
}

func NewDefaultCartRepository(db *gorm.DB) *DefaultCartRepository {
	return &DefaultCartRepository{DB: db}
}

func (r *DefaultCartRepository) GetCartByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart models.CartModel
	if err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Variant").
		Preload("Items.Variant.Product").
		First(&cart, "user_id = ?", userID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainCart(&cart), nil
}

// CreateCart leaves an existing cart of the same user untouched.
func (r *DefaultCartRepository) CreateCart(ctx context.Context, cart *domain.Cart) error {
	m := &models.CartModel{ID: cart.ID, UserID: cart.UserID}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(m).Error
}

func (r *DefaultCartRepository) CreateCartItem(ctx context.Context, item *domain.CartItem) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMCartItem(item)).Error
}

func (r *DefaultCartRepository) UpdateCartItemQty(ctx context.Context, itemID string, qty int) error {
	if !validID(itemID) {
		return domain.ErrNotFound
	}
	res := r.DB.WithContext(ctx).Model(&models.CartItemModel{}).
		Where("id = ?", itemID).
		Update("qty", qty)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultCartRepository) DeleteCartItem(ctx context.Context, itemID string) error {
	if !validID(itemID) {
		return nil
	}
	return r.DB.WithContext(ctx).Delete(&models.CartItemModel{}, "id = ?", itemID).Error
}
