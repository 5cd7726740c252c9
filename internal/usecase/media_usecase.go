package usecase

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	pagingdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/paging"
	"github.com/google/uuid"
)

const defaultMediaPageSize = 20

type MediaUsecase interface {
	ListMedia(ctx context.Context, actor *domain.Principal, input *contentdto.ListMediaInput) (*pagingdto.Page[*domain.Media], error)
	// CreateMedia is rate limited per client IP.
	CreateMedia(ctx context.Context, actor *domain.Principal, input *contentdto.CreateMediaInput) (*domain.Media, error)
	DeleteMedia(ctx context.Context, actor *domain.Principal, mediaID string) error
}

type DefaultMediaUsecase struct {
	mediaRepo domain.MediaRepository
	limiter   domain.RateLimiter
	limit     int
	metrics   *metrics.StoreMetrics
	effects   AdminEffects
	now       func() time.Time
}

func NewDefaultMediaUsecase(
	mediaRepo domain.MediaRepository,
	limiter domain.RateLimiter,
	limit int,
	storeMetrics *metrics.StoreMetrics,
	effects AdminEffects,
) *DefaultMediaUsecase {
	return &DefaultMediaUsecase{
		mediaRepo: mediaRepo,
		limiter:   limiter,
		limit:     limit,
		metrics:   storeMetrics,
		effects:   effects,
		now:       time.Now,
	}
}

func (uc *DefaultMediaUsecase) ListMedia(ctx context.Context, actor *domain.Principal, input *contentdto.ListMediaInput) (*pagingdto.Page[*domain.Media], error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	page, pageSize := defaultPage(input.Page, input.PageSize, defaultMediaPageSize)
	items, total, err := uc.mediaRepo.ListMedia(ctx, domain.MediaFilter{
		Query:    input.Query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &pagingdto.Page[*domain.Media]{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (uc *DefaultMediaUsecase) CreateMedia(ctx context.Context, actor *domain.Principal, input *contentdto.CreateMediaInput) (*domain.Media, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}

	decision, err := uc.limiter.Allow(ctx, "admin-media:"+input.ClientIP, uc.limit)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		uc.metrics.RecordRateLimited("media")
		return nil, &domain.RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}
	media := &domain.Media{
		ID:        uuid.New().String(),
		URL:       input.URL,
		Type:      input.Type,
		Width:     input.Width,
		Height:    input.Height,
		Alt:       input.Alt,
		CreatedBy: actor.UserID,
		CreatedAt: uc.now(),
	}
	if err := uc.mediaRepo.CreateMedia(ctx, media); err != nil {
		return nil, err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditMediaCreated,
		targetType: domain.TargetTypeMedia,
		targetID:   media.ID,
		meta:       map[string]any{"url": media.URL, "type": media.Type},
	}, "/admin/media")
	return media, nil
}

func (uc *DefaultMediaUsecase) DeleteMedia(ctx context.Context, actor *domain.Principal, mediaID string) error {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return err
	}
	if err := uc.mediaRepo.DeleteMedia(ctx, mediaID); err != nil {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditMediaDeleted,
		targetType: domain.TargetTypeMedia,
		targetID:   mediaID,
	}, "/admin/media")
	return nil
}
