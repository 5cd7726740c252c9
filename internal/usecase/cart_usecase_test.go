package usecase

import (
	"context"
	"testing"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	cartdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	jerseyVariantID  = "0b5c2f4e-6a1d-4f3b-9c8e-2d7a1e5f9b01"
	scarfVariantID   = "5e8d1a37-2c4b-4e9f-8a6d-3f1b7c9e0d22"
	missingVariantID = "9f2e4c6a-8b1d-4a3e-b5c7-1d9f3e5a7c43"
	stickerVariantID = "3c7a9e1b-5d2f-4b8c-a6e4-0f1d3b5c7e64"
	jerseyLVariantID = "7d1f3a5c-9e2b-4c6d-8f0a-2b4d6e8f1a35"
)

func newCartFixture() (*memStore, *DefaultCartUsecase) {
	store := newMemStore()
	store.addVariant(jerseyVariantID, 125000, 5)
	store.addVariant(scarfVariantID, 50000, 1)
	return store, NewDefaultCartUsecase(store, store)
}

func TestCart_GetOrCreateIsLazyAndStable(t *testing.T) {
	_, uc := newCartFixture()
	ctx := context.Background()

	first, err := uc.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)
	second, err := uc.GetOrCreateCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = uc.GetOrCreateCart(ctx, "")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCart_AddRejectsMalformedVariantID(t *testing.T) {
	_, uc := newCartFixture()

	_, err := uc.AddItem(context.Background(), "u1", &cartdto.AddItemInput{ProductVariantID: "not-a-uuid", Qty: 1})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "productVariantId is invalid", verr.Message)
}

func TestCart_AddMergesLines(t *testing.T) {
	_, uc := newCartFixture()
	ctx := context.Background()

	_, err := uc.AddItem(ctx, "u1", &cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: 2})
	require.NoError(t, err)
	cart, err := uc.AddItem(ctx, "u1", &cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: 3})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.Equal(t, int64(625000), cart.Subtotal())
}

func TestCart_AddRejections(t *testing.T) {
	tests := []struct {
		name    string
		prefill int
		input   cartdto.AddItemInput
		want    error
	}{
		{name: "unknown variant", input: cartdto.AddItemInput{ProductVariantID: missingVariantID, Qty: 1}, want: domain.ErrVariantNotFound},
		{name: "more than stock", input: cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: 6}, want: domain.ErrInsufficientStock},
		{name: "merged more than stock", prefill: 4, input: cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: 2}, want: domain.ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc := newCartFixture()
			ctx := context.Background()
			if tt.prefill > 0 {
				_, err := uc.AddItem(ctx, "u1", &cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: tt.prefill})
				require.NoError(t, err)
			}
			_, err := uc.AddItem(ctx, "u1", &tt.input)
			require.ErrorIs(t, err, tt.want)

			cart, err := uc.GetOrCreateCart(ctx, "u1")
			require.NoError(t, err)
			for _, item := range cart.Items {
				assert.LessOrEqual(t, item.Qty, item.Variant.Stock)
			}
		})
	}
}

func TestCart_AddValidatesQty(t *testing.T) {
	_, uc := newCartFixture()
	for _, qty := range []int{0, 11} {
		_, err := uc.AddItem(context.Background(), "u1", &cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: qty})
		require.True(t, domain.IsValidation(err), "qty %d", qty)
	}
}

func TestCart_UpdateItem(t *testing.T) {
	store, uc := newCartFixture()
	ctx := context.Background()
	cart, err := uc.AddItem(ctx, "u1", &cartdto.AddItemInput{ProductVariantID: jerseyVariantID, Qty: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	cart, err = uc.UpdateItem(ctx, "u1", itemID, &cartdto.UpdateItemInput{Qty: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Qty)

	_, err = uc.UpdateItem(ctx, "u1", itemID, &cartdto.UpdateItemInput{Qty: 6})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	store.setStock(jerseyVariantID, 2)
	_, err = uc.UpdateItem(ctx, "u1", itemID, &cartdto.UpdateItemInput{Qty: 3})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	cart, err = uc.UpdateItem(ctx, "u1", itemID, &cartdto.UpdateItemInput{Qty: 0})
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = uc.UpdateItem(ctx, "u1", itemID, &cartdto.UpdateItemInput{Qty: 1})
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestCart_RemoveItemOnlyFromOwnCart(t *testing.T) {
	_, uc := newCartFixture()
	ctx := context.Background()
	cart, err := uc.AddItem(ctx, "u1", &cartdto.AddItemInput{ProductVariantID: scarfVariantID, Qty: 1})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	_, err = uc.RemoveItem(ctx, "u2", itemID)
	require.ErrorIs(t, err, domain.ErrCartItemNotFound)

	cart, err = uc.RemoveItem(ctx, "u1", itemID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
