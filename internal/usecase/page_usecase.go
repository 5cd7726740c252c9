package usecase

import (
	"context"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
)

type PageUsecase interface {
	GetPublishedPage(ctx context.Context, slug string) (*domain.Page, error)

	ListPages(ctx context.Context, actor *domain.Principal) ([]*domain.Page, error)
	GetPage(ctx context.Context, actor *domain.Principal, pageID string) (*domain.Page, error)
	UpsertPage(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertPageInput) (*domain.Page, error)
	DeletePage(ctx context.Context, actor *domain.Principal, pageID string) error
}

type DefaultPageUsecase struct {
	pageRepo domain.PageRepository
	effects  AdminEffects
	now      func() time.Time
}

func NewDefaultPageUsecase(pageRepo domain.PageRepository, effects AdminEffects) *DefaultPageUsecase {
	return &DefaultPageUsecase{pageRepo: pageRepo, effects: effects, now: time.Now}
}

func (uc *DefaultPageUsecase) GetPublishedPage(ctx context.Context, slug string) (*domain.Page, error) {
	page, err := uc.pageRepo.GetPageBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page.Status != domain.ArticlePublished {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

func (uc *DefaultPageUsecase) ListPages(ctx context.Context, actor *domain.Principal) ([]*domain.Page, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	return uc.pageRepo.ListPages(ctx)
}

func (uc *DefaultPageUsecase) GetPage(ctx context.Context, actor *domain.Principal, pageID string) (*domain.Page, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	return uc.pageRepo.GetPageByID(ctx, pageID)
}

func (uc *DefaultPageUsecase) UpsertPage(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertPageInput) (*domain.Page, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	page := &domain.Page{
		ID:          input.ID,
		Title:       input.Title,
		Slug:        input.Slug,
		Body:        input.Body,
		Status:      domain.ArticleStatus(input.Status),
		PublishedAt: input.PublishedAt,
	}
	isNew := input.ID == ""
	oldSlug := ""
	if !isNew {
		existing, err := uc.pageRepo.GetPageByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		page.CreatedAt = existing.CreatedAt
		oldSlug = existing.Slug
	}
	if page.Status == domain.ArticlePublished && page.PublishedAt == nil {
		now := uc.now()
		page.PublishedAt = &now
	}
	if err := uc.pageRepo.UpsertPage(ctx, page); err != nil {
		return nil, err
	}

	action := domain.AuditPageUpdated
	if isNew {
		action = domain.AuditPageCreated
	}
	paths := []string{"/admin/pages", "/pages/" + page.Slug}
	if oldSlug != "" && oldSlug != page.Slug {
		paths = append(paths, "/pages/"+oldSlug)
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypePage,
		targetID:   page.ID,
		meta:       map[string]any{"slug": page.Slug, "status": page.Status},
	}, paths...)
	return page, nil
}

func (uc *DefaultPageUsecase) DeletePage(ctx context.Context, actor *domain.Principal, pageID string) error {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return err
	}
	existing, err := uc.pageRepo.GetPageByID(ctx, pageID)
	if err != nil {
		return err
	}
	if err := uc.pageRepo.DeletePage(ctx, pageID); err != nil {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditPageDeleted,
		targetType: domain.TargetTypePage,
		targetID:   pageID,
		meta:       map[string]any{"slug": existing.Slug},
	}, "/admin/pages", "/pages/"+existing.Slug)
	return nil
}
