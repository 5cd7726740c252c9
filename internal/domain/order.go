package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusPacked    OrderStatus = "PACKED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending, OrderStatusPaid, OrderStatusPacked,
		OrderStatusShipped, OrderStatusCompleted, OrderStatusCanceled,
	}
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses() {
		if st == s {
			return true
		}
	}
	return false
}

// RevenueStatuses are the statuses counted as realised revenue.
var RevenueStatuses = []OrderStatus{OrderStatusPaid, OrderStatusPacked, OrderStatusShipped, OrderStatusCompleted}

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentQRIS     PaymentMethod = "QRIS"
)

type ShippingAddress struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// Order is immutable in its financial fields once created at checkout.
type Order struct {
	ID              string
	Number          string
	UserID          string
	CouponID        string
	Total           int64
	Discount        int64
	FinalTotal      int64
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	PaymentRef      string
	ShippingAddress ShippingAddress
	Items           []*OrderItem
	Shipment        *Shipment
	Customer        *User
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem freezes the unit price paid at order time.
type OrderItem struct {
	ID               string
	OrderID          string
	ProductVariantID string
	Qty              int
	Price            int64
	Variant          *ProductVariant
}

type Shipment struct {
	ID             string
	OrderID        string
	Courier        string
	TrackingNumber string
	ShippedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderFilter struct {
	UserID string
	Status OrderStatus
	Limit  int
}

type OrderRepository interface {
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	// UpdateOrderStatus sets any status; transitions are not validated.
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) (*Order, error)
	UpsertShipment(ctx context.Context, shipment *Shipment) error
	CountOrdersByStatus(ctx context.Context, status OrderStatus) (int64, error)
	SumRevenueSince(ctx context.Context, statuses []OrderStatus, since time.Time) (int64, error)
}

// CheckoutTx is the set of writes that make up one checkout. All calls
// made through a CheckoutTx commit or roll back together.
type CheckoutTx interface {
	CreateOrder(ctx context.Context, order *Order) error
	// DecrementStock fails with ErrInsufficientStock if the variant has fewer
	// than qty units left.
	DecrementStock(ctx context.Context, variantID string, qty int) error
	CreateOrderItems(ctx context.Context, items []*OrderItem) error
	ClearCart(ctx context.Context, cartID string) error
	IncrementCouponUsage(ctx context.Context, couponID string) error
}

type CheckoutRepository interface {
	WithinCheckoutTx(ctx context.Context, fn func(tx CheckoutTx) error) error
}
