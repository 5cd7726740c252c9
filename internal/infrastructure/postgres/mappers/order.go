package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainOrder(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:              m.ID,
		Number:          m.Number,
		UserID:          m.UserID,
		Total:           m.Total,
		Discount:        m.Discount,
		FinalTotal:      m.FinalTotal,
		Status:          m.Status,
		PaymentMethod:   m.PaymentMethod,
		PaymentRef:      m.PaymentRef,
		ShippingAddress: m.ShippingAddress.Data(),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.CouponID != nil {
		order.CouponID = *m.CouponID
	}
	if m.User != nil {
		order.Customer = ToDomainUser(m.User)
	}
	if m.Shipment != nil {
		order.Shipment = ToDomainShipment(m.Shipment)
	}
	for i := range m.Items {
		order.Items = append(order.Items, ToDomainOrderItem(&m.Items[i]))
	}
	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	m := &models.OrderModel{
		ID:              order.ID,
		Number:          order.Number,
		UserID:          order.UserID,
		Total:           order.Total,
		Discount:        order.Discount,
		FinalTotal:      order.FinalTotal,
		Status:          order.Status,
		PaymentMethod:   order.PaymentMethod,
		PaymentRef:      order.PaymentRef,
		ShippingAddress: datatypes.NewJSONType(order.ShippingAddress),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	if order.CouponID != "" {
		couponID := order.CouponID
		m.CouponID = &couponID
	}
	return m
}

func ToDomainOrderItem(m *models.OrderItemModel) *domain.OrderItem {
	item := &domain.OrderItem{
		ID:               m.ID,
		OrderID:          m.OrderID,
		ProductVariantID: m.ProductVariantID,
		Qty:              m.Qty,
		Price:            m.Price,
	}
	if m.Variant.ID != "" {
		item.Variant = ToDomainVariant(&m.Variant)
	}
	return item
}

func ToGORMOrderItem(item *domain.OrderItem) *models.OrderItemModel {
	return &models.OrderItemModel{
		ID:               item.ID,
		OrderID:          item.OrderID,
		ProductVariantID: item.ProductVariantID,
		Qty:              item.Qty,
		Price:            item.Price,
	}
}

func ToDomainShipment(m *models.ShipmentModel) *domain.Shipment {
	return &domain.Shipment{
		ID:             m.ID,
		OrderID:        m.OrderID,
		Courier:        m.Courier,
		TrackingNumber: m.TrackingNumber,
		ShippedAt:      m.ShippedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToGORMShipment(s *domain.Shipment) *models.ShipmentModel {
	return &models.ShipmentModel{
		ID:             s.ID,
		OrderID:        s.OrderID,
		Courier:        s.Courier,
		TrackingNumber: s.TrackingNumber,
		ShippedAt:      s.ShippedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
