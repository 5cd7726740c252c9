package checkoutdto

type ShippingAddressInput struct {
	Name       string `json:"name" validate:"min=2"`
	Address    string `json:"address" validate:"min=5"`
	City       string `json:"city" validate:"min=2"`
	PostalCode string `json:"postalCode" validate:"min=4"`
}

type CheckoutInput struct {
	PaymentMethod   string               `json:"paymentMethod" validate:"oneof=TRANSFER QRIS"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress"`
	CouponCode      string               `json:"couponCode"`
	PaymentProofURL string               `json:"paymentProofUrl" validate:"omitempty,url"`
}
