package domain

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

// OrderEvent is emitted when an order is created or changes status.
type OrderEvent struct {
	OrderID    string      `json:"order_id"`
	Number     string      `json:"number"`
	UserID     string      `json:"user_id"`
	Status     OrderStatus `json:"status"`
	FinalTotal int64       `json:"final_total"`
	Discount   int64       `json:"discount"`
	CouponID   string      `json:"coupon_id,omitempty"`
}

type OrderEventPublisher interface {
	PublishOrder(event OrderEvent) error
}

// ContentInvalidator tells downstream caches which public views are stale.
type ContentInvalidator interface {
	Invalidate(paths ...string)
}
