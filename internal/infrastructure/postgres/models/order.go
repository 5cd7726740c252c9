package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"gorm.io/datatypes"
)

type OrderModel struct {
	ID              string               `gorm:"primaryKey;type:uuid"`
	Number          string               `gorm:"uniqueIndex;not null"`
	UserID          string               `gorm:"type:uuid;index;not null"`
	User            *UserModel           `gorm:"foreignKey:UserID;references:ID"`
	CouponID        *string              `gorm:"type:uuid;index"`
	Total           int64                `gorm:"not null"`
	Discount        int64                `gorm:"not null;default:0"`
	FinalTotal      int64                `gorm:"not null"`
	Status          domain.OrderStatus   `gorm:"type:varchar(16);index:idx_orders_status_created;not null"`
	PaymentMethod   domain.PaymentMethod `gorm:"type:varchar(16);not null"`
	PaymentRef      string
	ShippingAddress datatypes.JSONType[domain.ShippingAddress] `gorm:"column:shipping_address_json"`
	Items           []OrderItemModel                           `gorm:"foreignKey:OrderID;references:ID"`
	Shipment        *ShipmentModel                             `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt       time.Time                                  `gorm:"index:idx_orders_status_created"`
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID               string              `gorm:"primaryKey;type:uuid"`
	OrderID          string              `gorm:"type:uuid;index;not null"`
	ProductVariantID string              `gorm:"type:uuid;not null"`
	Qty              int                 `gorm:"not null"`
	Price            int64               `gorm:"not null"`
	Variant          ProductVariantModel `gorm:"foreignKey:ProductVariantID;references:ID"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

type ShipmentModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	OrderID        string `gorm:"type:uuid;uniqueIndex;not null"`
	Courier        string
	TrackingNumber string
	ShippedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
