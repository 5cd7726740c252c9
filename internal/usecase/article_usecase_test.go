package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/logger"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memArticleRepo struct {
	articles   map[string]*domain.Article
	categories map[string]*domain.Category
	links      map[string][]string
}

func newMemArticleRepo() *memArticleRepo {
	return &memArticleRepo{
		articles: map[string]*domain.Article{},
		categories: map[string]*domain.Category{
			"cat-news":  {ID: "cat-news", Name: "News", Slug: "news"},
			"cat-match": {ID: "cat-match", Name: "Matchday", Slug: "matchday"},
		},
		links: map[string][]string{},
	}
}

func (r *memArticleRepo) ListArticles(_ context.Context, filter domain.ArticleFilter) ([]*domain.Article, int64, error) {
	var out []*domain.Article
	for _, a := range r.articles {
		if filter.Status == "" || a.Status == filter.Status {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memArticleRepo) GetArticleBySlug(_ context.Context, slug string) (*domain.Article, error) {
	for _, a := range r.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memArticleRepo) GetArticleByID(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memArticleRepo) ListCategories(context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *memArticleRepo) CountCategories(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.categories[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *memArticleRepo) UpsertArticle(_ context.Context, article *domain.Article, categoryIDs []string) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	cp := *article
	r.articles[article.ID] = &cp
	r.links[article.ID] = categoryIDs
	return nil
}

func (r *memArticleRepo) DeleteArticle(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.articles, id)
	delete(r.links, id)
	return nil
}

func (r *memArticleRepo) CountArticles(_ context.Context, status domain.ArticleStatus) (int64, error) {
	_, n, err := r.ListArticles(context.Background(), domain.ArticleFilter{Status: status})
	return n, err
}

type failingAuditRepo struct{ calls int }

func (r *failingAuditRepo) CreateAuditLog(context.Context, *domain.AuditLog) error {
	r.calls++
	return errors.New("audit table unavailable")
}

func (r *failingAuditRepo) ListAuditLogs(context.Context, domain.AuditLogFilter) ([]*domain.AuditLog, int64, error) {
	return nil, 0, nil
}

func articleInput() *contentdto.UpsertArticleInput {
	return &contentdto.UpsertArticleInput{
		Title:      "Derby preview",
		Slug:       "derby-preview",
		Body:       "Everything you need to know before Sunday's derby.",
		Categories: []string{"cat-news", "cat-match", "cat-news"},
		Status:     "PUBLISHED",
	}
}

func TestUpsertArticle_AuditFailureDoesNotFailSave(t *testing.T) {
	repo := newMemArticleRepo()
	auditRepo := &failingAuditRepo{}
	invalidator := &recordingInvalidator{}
	uc := NewDefaultArticleUsecase(repo, AdminEffects{
		Audit:       logger.NewAuditLogger(auditRepo, newTestMetrics()),
		Invalidator: invalidator,
	})

	article, err := uc.UpsertArticle(context.Background(), staff(domain.RoleContentAdmin), articleInput())
	require.NoError(t, err)

	assert.Equal(t, 1, auditRepo.calls)
	assert.Contains(t, repo.articles, article.ID)
	assert.Equal(t, []string{"cat-news", "cat-match"}, repo.links[article.ID])
	assert.NotNil(t, article.PublishedAt)
	assert.Contains(t, invalidator.all(), "/news/derby-preview")
}

func TestUpsertArticle_AccessAndCategories(t *testing.T) {
	repo := newMemArticleRepo()
	audit := &recordingAudit{}
	uc := NewDefaultArticleUsecase(repo, AdminEffects{Audit: audit, Invalidator: &recordingInvalidator{}})
	ctx := context.Background()

	_, err := uc.UpsertArticle(ctx, staff(domain.RoleModerator), articleInput())
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Unauthorized", err.Error())

	_, err = uc.UpsertArticle(ctx, nil, articleInput())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	input := articleInput()
	input.Categories = []string{"cat-news", "cat-ghost"}
	_, err = uc.UpsertArticle(ctx, staff(domain.RoleSuperAdmin), input)
	require.ErrorIs(t, err, domain.ErrInvalidCategories)

	assert.Empty(t, repo.articles)
	assert.Empty(t, audit.actions())
}

func TestUpsertArticle_UpdateKeepsAuthor(t *testing.T) {
	repo := newMemArticleRepo()
	audit := &recordingAudit{}
	uc := NewDefaultArticleUsecase(repo, AdminEffects{Audit: audit})
	ctx := context.Background()

	created, err := uc.UpsertArticle(ctx, staff(domain.RoleContentAdmin), articleInput())
	require.NoError(t, err)

	input := articleInput()
	input.ID = created.ID
	input.Title = "Derby preview (updated)"
	updated, err := uc.UpsertArticle(ctx, staff(domain.RoleSuperAdmin), input)
	require.NoError(t, err)

	assert.Equal(t, created.AuthorID, updated.AuthorID)
	assert.Equal(t, []string{domain.AuditArticleCreated, domain.AuditArticleUpdated}, audit.actions())

	require.NoError(t, uc.DeleteArticle(ctx, staff(domain.RoleContentAdmin), created.ID))
	_, err = uc.GetPublishedArticle(ctx, "derby-preview")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
