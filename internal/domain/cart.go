package domain

import (
	"context"
	"time"
)

type Cart struct {
	ID        string
	UserID    string
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID               string
	CartID           string
	ProductVariantID string
	Qty              int
	Variant          *ProductVariant
}

func (c *Cart) FindItem(itemID string) *CartItem {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

func (c *Cart) FindVariant(variantID string) *CartItem {
	for _, item := range c.Items {
		if item.ProductVariantID == variantID {
			return item
		}
	}
	return nil
}

// Subtotal sums qty*price over lines whose variant is loaded.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Variant == nil {
			continue
		}
		total += int64(item.Qty) * item.Variant.Price
	}
	return total
}

type CartRepository interface {
	// GetCartByUserID returns ErrNotFound when the user has no cart yet.
	// Items are loaded with their variants.
	GetCartByUserID(ctx context.Context, userID string) (*Cart, error)
	CreateCart(ctx context.Context, cart *Cart) error
	CreateCartItem(ctx context.Context, item *CartItem) error
	UpdateCartItemQty(ctx context.Context, itemID string, qty int) error
	DeleteCartItem(ctx context.Context, itemID string) error
}
