package catalogdto

import "time"

type ListProductsInput struct {
	Query    string
	Page     int
	PageSize int
}

type ListAdminProductsInput struct {
	Query string
	// Status is ACTIVE, INACTIVE, or ALL/empty for every product.
	Status string
}

type VariantInput struct {
	ID      string            `json:"id"`
	SKU     string            `json:"sku" validate:"min=2"`
	Options map[string]string `json:"optionJson"`
	Stock   int               `json:"stock" validate:"gte=0"`
	Price   int64             `json:"price" validate:"gt=0"`
}

type UpsertProductInput struct {
	ID          string         `json:"id"`
	Name        string         `json:"name" validate:"min=2"`
	Slug        string         `json:"slug" validate:"min=2"`
	Description string         `json:"description"`
	BasePrice   int64          `json:"basePrice" validate:"gt=0"`
	Status      string         `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	CoverURL    string         `json:"coverUrl" validate:"omitempty,url"`
	Variants    []VariantInput `json:"variants" validate:"min=1,dive"`
}

type UpsertCouponInput struct {
	ID         string     `json:"id"`
	Code       string     `json:"code" validate:"min=3"`
	Type       string     `json:"type" validate:"oneof=PERCENT FIXED"`
	Value      int64      `json:"value" validate:"gt=0"`
	StartsAt   *time.Time `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt"`
	MinSpend   *int64     `json:"minSpend" validate:"omitempty,gte=0"`
	UsageLimit *int       `json:"usageLimit" validate:"omitempty,gte=0"`
}
