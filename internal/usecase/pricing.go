package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type priceQuote struct {
	subtotal   int64
	discount   int64
	finalTotal int64
	coupon     *domain.Coupon
}

// quote applies at most one coupon to subtotal. The final total never drops
// below zero.
func (uc *DefaultCheckoutUsecase) quote(ctx context.Context, subtotal int64, couponCode string, now time.Time) (*priceQuote, error) {
	q := &priceQuote{subtotal: subtotal, finalTotal: subtotal}
	if couponCode == "" {
		return q, nil
	}

	coupon, err := uc.couponRepo.FindActiveCoupon(ctx, couponCode, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrCouponInvalid
		}
		return nil, err
	}
	if err := coupon.CheckApplicable(subtotal); err != nil {
		return nil, err
	}

	q.coupon = coupon
	q.discount = coupon.Discount(subtotal)
	q.finalTotal = max(subtotal-q.discount, 0)
	return q, nil
}
