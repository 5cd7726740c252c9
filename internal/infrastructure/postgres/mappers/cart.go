package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
)

func ToDomainCart(m *models.CartModel) *domain.Cart {
	cart := &domain.Cart{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range m.Items {
		cart.Items = append(cart.Items, ToDomainCartItem(&m.Items[i]))
	}
	return cart
}

func ToDomainCartItem(m *models.CartItemModel) *domain.CartItem {
	item := &domain.CartItem{
		ID:               m.ID,
		CartID:           m.CartID,
		ProductVariantID: m.ProductVariantID,
		Qty:              m.Qty,
	}
	if m.Variant.ID != "" {
		item.Variant = ToDomainVariant(&m.Variant)
	}
	return item
}

func ToGORMCartItem(item *domain.CartItem) *models.CartItemModel {
	return &models.CartItemModel{
		ID:               item.ID,
		CartID:           item.CartID,
		ProductVariantID: item.ProductVariantID,
		Qty:              item.Qty,
	}
}
