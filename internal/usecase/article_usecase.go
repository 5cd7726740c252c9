package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	pagingdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/paging"
)

const defaultArticlePageSize = 10

type ArticleUsecase interface {
	ListPublishedArticles(ctx context.Context, input *contentdto.ListArticlesInput) (*pagingdto.Page[*domain.Article], error)
	GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	ListArticles(ctx context.Context, actor *domain.Principal, input *contentdto.ListArticlesInput) (*pagingdto.Page[*domain.Article], error)
	GetArticle(ctx context.Context, actor *domain.Principal, articleID string) (*domain.Article, error)
	UpsertArticle(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertArticleInput) (*domain.Article, error)
	DeleteArticle(ctx context.Context, actor *domain.Principal, articleID string) error
}

type DefaultArticleUsecase struct {
	articleRepo domain.ArticleRepository
	effects     AdminEffects
	now         func() time.Time
}

func NewDefaultArticleUsecase(articleRepo domain.ArticleRepository, effects AdminEffects) *DefaultArticleUsecase {
	return &DefaultArticleUsecase{
		articleRepo: articleRepo,
		effects:     effects,
		now:         time.Now,
	}
}

func (uc *DefaultArticleUsecase) ListPublishedArticles(ctx context.Context, input *contentdto.ListArticlesInput) (*pagingdto.Page[*domain.Article], error) {
	return uc.list(ctx, input, domain.ArticlePublished)
}

func (uc *DefaultArticleUsecase) GetPublishedArticle(ctx context.Context, slug string) (*domain.Article, error) {
	article, err := uc.articleRepo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.ArticlePublished {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

func (uc *DefaultArticleUsecase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.articleRepo.ListCategories(ctx)
}

func (uc *DefaultArticleUsecase) ListArticles(ctx context.Context, actor *domain.Principal, input *contentdto.ListArticlesInput) (*pagingdto.Page[*domain.Article], error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	status := domain.ArticleStatus(input.Status)
	switch status {
	case "", domain.ArticleDraft, domain.ArticlePublished:
	case "ALL":
		status = ""
	default:
		return nil, domain.NewValidationError("status", "status must be one of ALL, DRAFT, PUBLISHED")
	}
	return uc.list(ctx, input, status)
}

func (uc *DefaultArticleUsecase) list(ctx context.Context, input *contentdto.ListArticlesInput, status domain.ArticleStatus) (*pagingdto.Page[*domain.Article], error) {
	page, pageSize := defaultPage(input.Page, input.PageSize, defaultArticlePageSize)
	articles, total, err := uc.articleRepo.ListArticles(ctx, domain.ArticleFilter{
		Query:    input.Query,
		Category: input.Category,
		Status:   status,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &pagingdto.Page[*domain.Article]{Items: articles, Total: total, Page: page, PageSize: pageSize}, nil
}

func (uc *DefaultArticleUsecase) GetArticle(ctx context.Context, actor *domain.Principal, articleID string) (*domain.Article, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	return uc.articleRepo.GetArticleByID(ctx, articleID)
}

func (uc *DefaultArticleUsecase) UpsertArticle(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertArticleInput) (*domain.Article, error) {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	categoryIDs := dedupe(input.Categories)
	if len(categoryIDs) > 0 {
		found, err := uc.articleRepo.CountCategories(ctx, categoryIDs)
		if err != nil {
			return nil, err
		}
		if found != int64(len(categoryIDs)) {
			return nil, domain.ErrInvalidCategories
		}
	}

	article := &domain.Article{
		ID:          input.ID,
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Body:        input.Body,
		CoverURL:    input.CoverURL,
		Status:      domain.ArticleStatus(input.Status),
		PublishedAt: input.PublishedAt,
		AuthorID:    actor.UserID,
	}
	if article.Status == "" {
		article.Status = domain.ArticleDraft
	}

	isNew := input.ID == ""
	if !isNew {
		existing, err := uc.articleRepo.GetArticleByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		article.AuthorID = existing.AuthorID
		article.CreatedAt = existing.CreatedAt
		if article.PublishedAt == nil {
			article.PublishedAt = existing.PublishedAt
		}
	}
	if article.Status == domain.ArticlePublished && article.PublishedAt == nil {
		now := uc.now()
		article.PublishedAt = &now
	}

	if err := uc.articleRepo.UpsertArticle(ctx, article, categoryIDs); err != nil {
		return nil, err
	}

	action := domain.AuditArticleUpdated
	if isNew {
		action = domain.AuditArticleCreated
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypeArticle,
		targetID:   article.ID,
		meta:       map[string]any{"status": article.Status, "slug": article.Slug},
	}, "/admin/articles", "/admin/articles/"+article.ID, "/news", "/news/"+article.Slug, "/")
	return article, nil
}

func (uc *DefaultArticleUsecase) DeleteArticle(ctx context.Context, actor *domain.Principal, articleID string) error {
	if err := authorize(actor, domain.ContentRoles); err != nil {
		return err
	}
	existing, err := uc.articleRepo.GetArticleByID(ctx, articleID)
	if err != nil {
		return err
	}
	if err := uc.articleRepo.DeleteArticle(ctx, articleID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditArticleDeleted,
		targetType: domain.TargetTypeArticle,
		targetID:   articleID,
		meta:       map[string]any{"slug": existing.Slug},
	}, "/admin/articles", "/news", "/news/"+existing.Slug, "/")
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
