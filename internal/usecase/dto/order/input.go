package orderdto

import "time"

type UpdateStatusInput struct {
	OrderID string `json:"-" validate:"required"`
	Status  string `json:"status" validate:"oneof=PENDING PAID PACKED SHIPPED COMPLETED CANCELED"`
}

type ShipmentInput struct {
	OrderID        string     `json:"-" validate:"required"`
	Courier        string     `json:"courier"`
	TrackingNumber string     `json:"trackingNumber"`
	ShippedAt      *time.Time `json:"shippedAt"`
}
