package usecase

import (
	"testing"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	checkoutdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/checkout"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInput_Messages(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		field   string
		message string
	}{
		{
			name:    "slug pattern",
			input:   &contentdto.UpsertPageInput{Title: "About", Slug: "About Us", Body: "history of the curva"},
			field:   "slug",
			message: "slug may only contain lowercase letters, digits and hyphens",
		},
		{
			name:    "oneof",
			input:   &checkoutdto.CheckoutInput{PaymentMethod: "CASH"},
			field:   "paymentMethod",
			message: "paymentMethod must be one of TRANSFER, QRIS",
		},
		{
			name: "nested min length",
			input: &checkoutdto.CheckoutInput{
				PaymentMethod:   "QRIS",
				ShippingAddress: checkoutdto.ShippingAddressInput{Name: "Ari", Address: "Jl.", City: "Malang", PostalCode: "65111"},
			},
			field:   "address",
			message: "address must be at least 5 characters",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.message, ve.Message)
		})
	}
}
