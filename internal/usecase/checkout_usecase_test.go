package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	cartdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/cart"
	checkoutdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/checkout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	store     *memStore
	carts     *DefaultCartUsecase
	checkout  *DefaultCheckoutUsecase
	publisher *recordingPublisher
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	store := newMemStore()
	publisher := &recordingPublisher{}
	uc, err := NewDefaultCheckoutUsecase(store, store, store, publisher, newTestMetrics())
	require.NoError(t, err)
	return &checkoutFixture{
		store:     store,
		carts:     NewDefaultCartUsecase(store, store),
		checkout:  uc,
		publisher: publisher,
	}
}

func (f *checkoutFixture) add(t *testing.T, userID, variantID string, qty int) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), userID, &cartdto.AddItemInput{ProductVariantID: variantID, Qty: qty})
	require.NoError(t, err)
}

func validCheckoutInput(coupon string) *checkoutdto.CheckoutInput {
	return &checkoutdto.CheckoutInput{
		PaymentMethod: "TRANSFER",
		ShippingAddress: checkoutdto.ShippingAddressInput{
			Name:       "Curva Sud",
			Address:    "Jl. Stadion No. 1",
			City:       "Sleman",
			PostalCode: "55281",
		},
		CouponCode: coupon,
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestCheckout_PercentCoupon(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.addVariant(jerseyVariantID, 125000, 10)
	f.store.addCoupon(&domain.Coupon{Code: "CURVA30", Type: domain.CouponPercent, Value: 30})
	f.add(t, "u1", jerseyVariantID, 3)

	order, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput("CURVA30"))
	require.NoError(t, err)

	assert.Equal(t, int64(375000), order.Total)
	assert.Equal(t, int64(112500), order.Discount)
	assert.Equal(t, int64(262500), order.FinalTotal)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "coupon-CURVA30", order.CouponID)
	assert.True(t, strings.HasPrefix(order.Number, "BCS-"))
	assert.Len(t, order.Number, len("BCS-")+10)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(125000), order.Items[0].Price)
	assert.Equal(t, 3, order.Items[0].Qty)

	assert.Equal(t, 7, f.store.stock(jerseyVariantID))
	assert.Equal(t, 1, f.store.coupon("CURVA30").Used)

	cart, err := f.carts.GetOrCreateCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	assert.Eventually(t, func() bool {
		events := f.publisher.published()
		return len(events) == 1 && events[0].OrderID == order.ID
	}, time.Second, 10*time.Millisecond)
}

func TestCheckout_FrozenPriceIgnoresLaterChanges(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.addVariant(scarfVariantID, 50000, 5)
	f.add(t, "u1", scarfVariantID, 2)

	order, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput(""))
	require.NoError(t, err)

	f.store.mu.Lock()
	f.store.state.variants[scarfVariantID].Price = 99000
	f.store.mu.Unlock()

	assert.Equal(t, int64(100000), order.Total)
	assert.Equal(t, int64(0), order.Discount)
	assert.Equal(t, int64(50000), order.Items[0].Price)
}

func TestCheckout_CouponRejections(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	yesterday := time.Now().Add(-24 * time.Hour)

	tests := []struct {
		name   string
		coupon *domain.Coupon
		code   string
		want   error
	}{
		{
			name:   "minimum spend not met",
			coupon: &domain.Coupon{Code: "BIG", Type: domain.CouponPercent, Value: 10, MinSpend: int64Ptr(500000)},
			code:   "BIG",
			want:   domain.ErrMinimumSpendNotMet,
		},
		{
			name:   "usage limit reached",
			coupon: &domain.Coupon{Code: "ONCE", Type: domain.CouponFixed, Value: 10000, UsageLimit: intPtr(1), Used: 1},
			code:   "ONCE",
			want:   domain.ErrCouponLimitReached,
		},
		{
			name:   "expired",
			coupon: &domain.Coupon{Code: "OLD", Type: domain.CouponFixed, Value: 10000, StartsAt: &past, EndsAt: &yesterday},
			code:   "OLD",
			want:   domain.ErrCouponInvalid,
		},
		{
			name: "unknown code",
			code: "NOPE",
			want: domain.ErrCouponInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.store.addVariant(jerseyVariantID, 125000, 10)
			if tt.coupon != nil {
				f.store.addCoupon(tt.coupon)
			}
			f.add(t, "u1", jerseyVariantID, 3)

			_, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput(tt.code))
			require.ErrorIs(t, err, tt.want)

			assert.Equal(t, 10, f.store.stock(jerseyVariantID))
			assert.Zero(t, f.store.orderCount())
		})
	}
}

func TestCheckout_FixedCouponNeverGoesNegative(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.addVariant(stickerVariantID, 15000, 10)
	f.store.addCoupon(&domain.Coupon{Code: "FREE", Type: domain.CouponFixed, Value: 50000})
	f.add(t, "u1", stickerVariantID, 1)

	order, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput("FREE"))
	require.NoError(t, err)
	assert.Equal(t, int64(50000), order.Discount)
	assert.Equal(t, int64(0), order.FinalTotal)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput(""))
	require.ErrorIs(t, err, domain.ErrCartEmpty)

	_, err = f.carts.GetOrCreateCart(context.Background(), "u1")
	require.NoError(t, err)
	_, err = f.checkout.Checkout(context.Background(), "u1", validCheckoutInput(""))
	require.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestCheckout_RollsBackWhenStockRunsOut(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.addVariant(jerseyVariantID, 125000, 10)
	f.store.addVariant(jerseyLVariantID, 125000, 2)
	f.store.addCoupon(&domain.Coupon{Code: "CURVA30", Type: domain.CouponPercent, Value: 30})
	f.add(t, "u1", jerseyVariantID, 2)
	f.add(t, "u1", jerseyLVariantID, 2)

	// another buyer took the last units after the cart was filled
	f.store.setStock(jerseyLVariantID, 1)

	_, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput("CURVA30"))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.store.stock(jerseyVariantID))
	assert.Equal(t, 1, f.store.stock(jerseyLVariantID))
	assert.Zero(t, f.store.orderCount())
	assert.Zero(t, f.store.coupon("CURVA30").Used)

	cart, err := f.carts.GetOrCreateCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestCheckout_RollsBackOnLateFailure(t *testing.T) {
	for _, op := range []string{"CreateOrderItems", "ClearCart", "IncrementCouponUsage"} {
		t.Run(op, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.store.addVariant(jerseyVariantID, 125000, 10)
			f.store.addCoupon(&domain.Coupon{Code: "CURVA30", Type: domain.CouponPercent, Value: 30})
			f.add(t, "u1", jerseyVariantID, 3)
			f.store.failOn = op

			_, err := f.checkout.Checkout(context.Background(), "u1", validCheckoutInput("CURVA30"))
			require.ErrorIs(t, err, errInjected)

			assert.Equal(t, 10, f.store.stock(jerseyVariantID))
			assert.Zero(t, f.store.orderCount())
			assert.Zero(t, f.store.coupon("CURVA30").Used)
			assert.Empty(t, f.publisher.published())
		})
	}
}

func TestCheckout_Validation(t *testing.T) {
	f := newCheckoutFixture(t)
	f.store.addVariant(jerseyVariantID, 125000, 10)
	f.add(t, "u1", jerseyVariantID, 1)

	input := validCheckoutInput("")
	input.PaymentMethod = "CASH"
	_, err := f.checkout.Checkout(context.Background(), "u1", input)
	require.True(t, domain.IsValidation(err))

	input = validCheckoutInput("")
	input.ShippingAddress.PostalCode = "55"
	_, err = f.checkout.Checkout(context.Background(), "u1", input)
	require.True(t, domain.IsValidation(err))
	assert.Contains(t, err.Error(), "postalCode")

	_, err = f.checkout.Checkout(context.Background(), "", validCheckoutInput(""))
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
