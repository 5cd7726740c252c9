package domain

import (
	"context"
	"time"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	BasePrice   int64
	Status      ProductStatus
	CoverURL    string
	Variants    []*ProductVariant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariant is the purchasable unit. Price is in the smallest currency unit.
type ProductVariant struct {
	ID        string
	ProductID string
	SKU       string
	Options   map[string]string
	Stock     int
	Price     int64
	Product   *Product
}

type ProductFilter struct {
	Query string
	// MatchSKU extends Query to variant SKUs.
	MatchSKU bool
	Status   ProductStatus
	Page     int
	PageSize int
}

type CatalogRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetProductByID(ctx context.Context, productID string) (*Product, error)
	GetVariantByID(ctx context.Context, variantID string) (*ProductVariant, error)
	// UpsertProduct saves the product and syncs its variants in one transaction:
	// variants missing from product.Variants are deleted, ones with an ID are
	// updated, the rest are created.
	UpsertProduct(ctx context.Context, product *Product) error
	CountProducts(ctx context.Context) (int64, error)
	ListLowStockVariants(ctx context.Context, threshold, limit int) ([]*ProductVariant, error)
}
