package models

import "time"

type CartModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	UserID    string          `gorm:"type:uuid;uniqueIndex;not null"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartModel) TableName() string {
	return "carts"
}

type CartItemModel struct {
	ID               string              `gorm:"primaryKey;type:uuid"`
	CartID           string              `gorm:"type:uuid;index;not null;uniqueIndex:idx_cart_variant"`
	ProductVariantID string              `gorm:"type:uuid;not null;uniqueIndex:idx_cart_variant"`
	Qty              int                 `gorm:"not null"`
	Variant          ProductVariantModel `gorm:"foreignKey:ProductVariantID;references:ID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
