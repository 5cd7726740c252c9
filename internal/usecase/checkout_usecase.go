package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	checkoutdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/checkout"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const (
	orderNumberPrefix   = "BCS-"
	orderNumberAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	orderNumberLength   = 10
)

type CheckoutUsecase interface {
	Checkout(ctx context.Context, userID string, input *checkoutdto.CheckoutInput) (*domain.Order, error)
}

type DefaultCheckoutUsecase struct {
	cartRepo     domain.CartRepository
	couponRepo   domain.CouponRepository
	checkoutRepo domain.CheckoutRepository
	publisher    domain.OrderEventPublisher
	metrics      *metrics.StoreMetrics
	newNumber    func() string
	now          func() time.Time
}

func NewDefaultCheckoutUsecase(
	cartRepo domain.CartRepository,
	couponRepo domain.CouponRepository,
	checkoutRepo domain.CheckoutRepository,
	publisher domain.OrderEventPublisher,
	storeMetrics *metrics.StoreMetrics,
) (*DefaultCheckoutUsecase, error) {
	gen, err := nanoid.CustomASCII(orderNumberAlphabet, orderNumberLength)
	if err != nil {
		return nil, err
	}
	return &DefaultCheckoutUsecase{
		cartRepo:     cartRepo,
		couponRepo:   couponRepo,
		checkoutRepo: checkoutRepo,
		publisher:    publisher,
		metrics:      storeMetrics,
		newNumber:    func() string { return orderNumberPrefix + gen() },
		now:          time.Now,
	}, nil
}

func (uc *DefaultCheckoutUsecase) Checkout(ctx context.Context, userID string, input *checkoutdto.CheckoutInput) (*domain.Order, error) {
	start := uc.now()
	order, coupon, err := uc.checkout(ctx, userID, input, start)
	if err != nil {
		uc.metrics.RecordCheckoutFailure(checkoutFailureReason(err))
		return nil, err
	}

	uc.metrics.RecordCheckout(string(order.PaymentMethod), order.FinalTotal, order.Discount)
	uc.metrics.RecordCheckoutDuration(uc.now().Sub(start).Seconds())
	if coupon != nil {
		uc.metrics.RecordCouponRedemption(string(coupon.Type))
	}

	go func(event domain.OrderEvent) {
		if err := uc.publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish order event", "order_id", event.OrderID, "error", err)
		}
	}(orderEvent(order))

	return order, nil
}

func (uc *DefaultCheckoutUsecase) checkout(ctx context.Context, userID string, input *checkoutdto.CheckoutInput, now time.Time) (*domain.Order, *domain.Coupon, error) {
	if userID == "" {
		return nil, nil, domain.ErrUnauthorized
	}
	if err := validateInput(input); err != nil {
		return nil, nil, err
	}

	cart, err := uc.cartRepo.GetCartByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, domain.ErrCartEmpty
	}
	if err != nil {
		return nil, nil, err
	}
	if len(cart.Items) == 0 {
		return nil, nil, domain.ErrCartEmpty
	}
	for _, item := range cart.Items {
		if item.Variant == nil {
			return nil, nil, domain.ErrVariantNotFound
		}
	}

	quote, err := uc.quote(ctx, cart.Subtotal(), strings.TrimSpace(input.CouponCode), now)
	if err != nil {
		return nil, nil, err
	}

	order := &domain.Order{
		ID:            uuid.New().String(),
		Number:        uc.newNumber(),
		UserID:        userID,
		Total:         quote.subtotal,
		Discount:      quote.discount,
		FinalTotal:    quote.finalTotal,
		Status:        domain.OrderStatusPending,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
		PaymentRef:    input.PaymentProofURL,
		ShippingAddress: domain.ShippingAddress{
			Name:       input.ShippingAddress.Name,
			Address:    input.ShippingAddress.Address,
			City:       input.ShippingAddress.City,
			PostalCode: input.ShippingAddress.PostalCode,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if quote.coupon != nil {
		order.CouponID = quote.coupon.ID
	}

	items := make([]*domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, &domain.OrderItem{
			ID:               uuid.New().String(),
			OrderID:          order.ID,
			ProductVariantID: line.ProductVariantID,
			Qty:              line.Qty,
			Price:            line.Variant.Price,
			Variant:          line.Variant,
		})
	}

	err = uc.checkoutRepo.WithinCheckoutTx(ctx, func(tx domain.CheckoutTx) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.DecrementStock(ctx, item.ProductVariantID, item.Qty); err != nil {
				return err
			}
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return err
		}
		if err := tx.ClearCart(ctx, cart.ID); err != nil {
			return err
		}
		if order.CouponID != "" {
			return tx.IncrementCouponUsage(ctx, order.CouponID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	order.Items = items
	return order, quote.coupon, nil
}

func orderEvent(order *domain.Order) domain.OrderEvent {
	return domain.OrderEvent{
		OrderID:    order.ID,
		Number:     order.Number,
		UserID:     order.UserID,
		Status:     order.Status,
		FinalTotal: order.FinalTotal,
		Discount:   order.Discount,
		CouponID:   order.CouponID,
	}
}

func checkoutFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCartEmpty):
		return "cart_empty"
	case errors.Is(err, domain.ErrCouponInvalid):
		return "coupon_invalid"
	case errors.Is(err, domain.ErrCouponLimitReached):
		return "coupon_limit_reached"
	case errors.Is(err, domain.ErrMinimumSpendNotMet):
		return "minimum_spend"
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrVariantNotFound):
		return "stock"
	case errors.Is(err, domain.ErrUnauthorized):
		return "unauthorized"
	case domain.IsValidation(err):
		return "validation"
	}
	return "internal"
}
