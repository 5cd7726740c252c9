package response

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type VariantResponse struct {
	ID        string            `json:"id"`
	ProductID string            `json:"productId"`
	SKU       string            `json:"sku"`
	Options   map[string]string `json:"optionJson"`
	Stock     int               `json:"stock"`
	Price     int64             `json:"price"`
	Product   *ProductSummary   `json:"product,omitempty"`
}

type ProductSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description,omitempty"`
	BasePrice   int64              `json:"basePrice"`
	Status      string             `json:"status"`
	CoverURL    string             `json:"coverUrl,omitempty"`
	Variants    []*VariantResponse `json:"variants"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ProductDetailResponse struct {
	*ProductResponse
	Comments []*CommentResponse `json:"comments"`
}

type CartItemResponse struct {
	ID               string           `json:"id"`
	ProductVariantID string           `json:"productVariantId"`
	Qty              int              `json:"qty"`
	Variant          *VariantResponse `json:"variant,omitempty"`
}

type CartResponse struct {
	ID       string              `json:"id"`
	UserID   string              `json:"userId"`
	Items    []*CartItemResponse `json:"items"`
	Subtotal int64               `json:"subtotal"`
}

type OrderItemResponse struct {
	ID               string           `json:"id"`
	ProductVariantID string           `json:"productVariantId"`
	Qty              int              `json:"qty"`
	Price            int64            `json:"price"`
	Variant          *VariantResponse `json:"variant,omitempty"`
}

type ShipmentResponse struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"orderId"`
	Courier        string     `json:"courier,omitempty"`
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	ShippedAt      *time.Time `json:"shippedAt"`
}

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	Number          string                 `json:"number"`
	UserID          string                 `json:"userId"`
	CouponID        string                 `json:"couponId,omitempty"`
	Total           int64                  `json:"total"`
	Discount        int64                  `json:"discount"`
	FinalTotal      int64                  `json:"finalTotal"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentRef      string                 `json:"paymentRef,omitempty"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	Items           []*OrderItemResponse   `json:"items"`
	Shipment        *ShipmentResponse      `json:"shipment"`
	User            *CustomerResponse      `json:"user,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

type CouponResponse struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Type       string     `json:"type"`
	Value      int64      `json:"value"`
	StartsAt   *time.Time `json:"startsAt"`
	EndsAt     *time.Time `json:"endsAt"`
	MinSpend   *int64     `json:"minSpend"`
	UsageLimit *int       `json:"usageLimit"`
	Used       int        `json:"used"`
	Orders     int64      `json:"orders"`
}

func NewVariant(v *domain.ProductVariant) *VariantResponse {
	if v == nil {
		return nil
	}
	resp := &VariantResponse{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Options:   v.Options,
		Stock:     v.Stock,
		Price:     v.Price,
	}
	if v.Product != nil {
		resp.Product = &ProductSummary{ID: v.Product.ID, Name: v.Product.Name, Slug: v.Product.Slug}
	}
	return resp
}

func NewVariants(variants []*domain.ProductVariant) []*VariantResponse {
	out := make([]*VariantResponse, 0, len(variants))
	for _, v := range variants {
		out = append(out, NewVariant(v))
	}
	return out
}

func NewProduct(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Status:      string(p.Status),
		CoverURL:    p.CoverURL,
		Variants:    NewVariants(p.Variants),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewProducts(products []*domain.Product) []*ProductResponse {
	out := make([]*ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p))
	}
	return out
}

func NewCart(c *domain.Cart) *CartResponse {
	items := make([]*CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, &CartItemResponse{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			Qty:              item.Qty,
			Variant:          NewVariant(item.Variant),
		})
	}
	return &CartResponse{
		ID:       c.ID,
		UserID:   c.UserID,
		Items:    items,
		Subtotal: c.Subtotal(),
	}
}

func NewShipment(s *domain.Shipment) *ShipmentResponse {
	if s == nil {
		return nil
	}
	return &ShipmentResponse{
		ID:             s.ID,
		OrderID:        s.OrderID,
		Courier:        s.Courier,
		TrackingNumber: s.TrackingNumber,
		ShippedAt:      s.ShippedAt,
	}
}

func NewOrder(o *domain.Order) *OrderResponse {
	items := make([]*OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, &OrderItemResponse{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			Qty:              item.Qty,
			Price:            item.Price,
			Variant:          NewVariant(item.Variant),
		})
	}
	resp := &OrderResponse{
		ID:              o.ID,
		Number:          o.Number,
		UserID:          o.UserID,
		CouponID:        o.CouponID,
		Total:           o.Total,
		Discount:        o.Discount,
		FinalTotal:      o.FinalTotal,
		Status:          string(o.Status),
		PaymentMethod:   string(o.PaymentMethod),
		PaymentRef:      o.PaymentRef,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		Shipment:        NewShipment(o.Shipment),
		CreatedAt:       o.CreatedAt,
	}
	if o.Customer != nil {
		resp.User = &CustomerResponse{Name: o.Customer.Name, Email: o.Customer.Email}
	}
	return resp
}

func NewOrders(orders []*domain.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrder(o))
	}
	return out
}

func NewCoupons(coupons []*domain.Coupon) []*CouponResponse {
	out := make([]*CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, NewCoupon(c))
	}
	return out
}

func NewCoupon(c *domain.Coupon) *CouponResponse {
	return &CouponResponse{
		ID:         c.ID,
		Code:       c.Code,
		Type:       string(c.Type),
		Value:      c.Value,
		StartsAt:   c.StartsAt,
		EndsAt:     c.EndsAt,
		MinSpend:   c.MinSpend,
		UsageLimit: c.UsageLimit,
		Used:       c.Used,
		Orders:     c.OrderCount,
	}
}
