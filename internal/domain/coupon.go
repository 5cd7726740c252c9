package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CouponType string

const (
	CouponPercent CouponType = "PERCENT"
	CouponFixed   CouponType = "FIXED"
)

type Coupon struct {
	ID         string
	Code       string
	Type       CouponType
	Value      int64
	StartsAt   *time.Time
	EndsAt     *time.Time
	MinSpend   *int64
	UsageLimit *int
	Used       int
	OrderCount int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ActiveAt reports whether t falls inside the validity window. A nil bound
// is open-ended.
func (c *Coupon) ActiveAt(t time.Time) bool {
	if c.StartsAt != nil && t.Before(*c.StartsAt) {
		return false
	}
	if c.EndsAt != nil && t.After(*c.EndsAt) {
		return false
	}
	return true
}

// CheckApplicable validates usage limit and minimum spend for subtotal.
// A zero limit or minimum counts as absent.
func (c *Coupon) CheckApplicable(subtotal int64) error {
	if c.UsageLimit != nil && *c.UsageLimit > 0 && c.Used >= *c.UsageLimit {
		return ErrCouponLimitReached
	}
	if c.MinSpend != nil && *c.MinSpend > 0 && subtotal < *c.MinSpend {
		return ErrMinimumSpendNotMet
	}
	return nil
}

// Discount computes the amount taken off subtotal. PERCENT coupons floor
// value% of subtotal; FIXED coupons take value flat.
func (c *Coupon) Discount(subtotal int64) int64 {
	switch c.Type {
	case CouponPercent:
		return decimal.NewFromInt(c.Value).
			Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromInt(subtotal)).
			Floor().
			IntPart()
	case CouponFixed:
		return c.Value
	default:
		return 0
	}
}

type CouponRepository interface {
	// FindActiveCoupon returns the coupon with code whose window contains now,
	// or ErrNotFound.
	FindActiveCoupon(ctx context.Context, code string, now time.Time) (*Coupon, error)
	ListCoupons(ctx context.Context) ([]*Coupon, error)
	UpsertCoupon(ctx context.Context, coupon *Coupon) error
}
