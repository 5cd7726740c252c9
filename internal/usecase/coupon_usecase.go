package usecase

import (
	"context"
	"strings"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	catalogdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/catalog"
)

type CouponUsecase interface {
	ListCoupons(ctx context.Context, actor *domain.Principal) ([]*domain.Coupon, error)
	UpsertCoupon(ctx context.Context, actor *domain.Principal, input *catalogdto.UpsertCouponInput) (*domain.Coupon, error)
}

type DefaultCouponUsecase struct {
	couponRepo domain.CouponRepository
	effects    AdminEffects
}

func NewDefaultCouponUsecase(couponRepo domain.CouponRepository, effects AdminEffects) *DefaultCouponUsecase {
	return &DefaultCouponUsecase{couponRepo: couponRepo, effects: effects}
}

func (uc *DefaultCouponUsecase) ListCoupons(ctx context.Context, actor *domain.Principal) ([]*domain.Coupon, error) {
	if err := authorize(actor, domain.StoreRoles); err != nil {
		return nil, err
	}
	return uc.couponRepo.ListCoupons(ctx)
}

// UpsertCoupon never touches the redemption counter.
func (uc *DefaultCouponUsecase) UpsertCoupon(ctx context.Context, actor *domain.Principal, input *catalogdto.UpsertCouponInput) (*domain.Coupon, error) {
	if err := authorize(actor, domain.StoreRoles); err != nil {
		return nil, err
	}
	input.Code = strings.TrimSpace(input.Code)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Type == string(domain.CouponPercent) && input.Value > 100 {
		return nil, domain.NewValidationError("value", "value must be at most 100 for PERCENT coupons")
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, domain.NewValidationError("endsAt", "endsAt must not be before startsAt")
	}

	isNew := input.ID == ""
	coupon := &domain.Coupon{
		ID:         input.ID,
		Code:       input.Code,
		Type:       domain.CouponType(input.Type),
		Value:      input.Value,
		StartsAt:   input.StartsAt,
		EndsAt:     input.EndsAt,
		MinSpend:   input.MinSpend,
		UsageLimit: input.UsageLimit,
	}
	if err := uc.couponRepo.UpsertCoupon(ctx, coupon); err != nil {
		return nil, err
	}

	action := domain.AuditCouponUpdated
	if isNew {
		action = domain.AuditCouponCreated
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypeCoupon,
		targetID:   coupon.ID,
		meta:       map[string]any{"code": coupon.Code, "type": coupon.Type},
	}, "/admin/coupons")
	return coupon, nil
}
