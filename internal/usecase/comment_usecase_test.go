package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/ratelimit"
	commentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/comment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCommentRepo struct {
	mu       sync.Mutex
	comments []*domain.Comment
}

func (r *memCommentRepo) CreateComment(_ context.Context, c *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append(r.comments, c)
	return nil
}

func (r *memCommentRepo) ListComments(_ context.Context, filter domain.CommentFilter) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Comment
	for _, c := range r.comments {
		if filter.Target != nil && c.Target != *filter.Target {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memCommentRepo) UpdateCommentStatus(_ context.Context, id string, status domain.CommentStatus) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			c.Status = status
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCommentRepo) CountCommentsByStatus(_ context.Context, status domain.CommentStatus) (int64, error) {
	list, _ := r.ListComments(context.Background(), domain.CommentFilter{Status: status})
	return int64(len(list)), nil
}

type staticTargets struct {
	articles map[string]bool
	products map[string]bool
}

func (s staticTargets) ArticleExists(_ context.Context, id string) (bool, error) { return s.articles[id], nil }
func (s staticTargets) ProductExists(_ context.Context, id string) (bool, error) { return s.products[id], nil }

func newCommentFixture(t *testing.T, limiter domain.RateLimiter) (*memCommentRepo, *DefaultCommentUsecase, *recordingAudit) {
	t.Helper()
	repo := &memCommentRepo{}
	audit := &recordingAudit{}
	targets := staticTargets{articles: map[string]bool{"a1": true}, products: map[string]bool{"p1": true}}
	uc := NewDefaultCommentUsecase(repo, targets, limiter, 5, newTestMetrics(), AdminEffects{Audit: audit, Invalidator: &recordingInvalidator{}})
	return repo, uc, audit
}

func commentInput(ip string) *commentdto.CreateCommentInput {
	return &commentdto.CreateCommentInput{RefType: "ARTICLE", RefID: "a1", Body: "Forza Curva Sud!", UserID: "u1", ClientIP: ip}
}

func TestSubmitComment_RateLimited(t *testing.T) {
	limiter, err := ratelimit.NewMemoryLimiter(100, time.Minute)
	require.NoError(t, err)
	repo, uc, _ := newCommentFixture(t, limiter)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c, err := uc.SubmitComment(ctx, commentInput("10.0.0.1"))
		require.NoError(t, err)
		assert.Equal(t, domain.CommentPending, c.Status)
	}

	_, err = uc.SubmitComment(ctx, commentInput("10.0.0.1"))
	var limited *domain.RateLimitedError
	require.True(t, errors.As(err, &limited))
	assert.Greater(t, limited.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, limited.RetryAfter, time.Minute)
	assert.Len(t, repo.comments, 5)

	// a different address is a different key
	_, err = uc.SubmitComment(ctx, commentInput("10.0.0.2"))
	require.NoError(t, err)
}

func TestSubmitComment_KeyAndChecks(t *testing.T) {
	limiter := &stubLimiter{decision: domain.RateLimitDecision{Allowed: true}}
	_, uc, _ := newCommentFixture(t, limiter)
	ctx := context.Background()

	_, err := uc.SubmitComment(ctx, commentInput("10.0.0.1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"comment:u1:10.0.0.1"}, limiter.keys)

	anon := commentInput("10.0.0.1")
	anon.UserID = ""
	_, err = uc.SubmitComment(ctx, anon)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	short := commentInput("10.0.0.1")
	short.Body = "ok"
	_, err = uc.SubmitComment(ctx, short)
	require.True(t, domain.IsValidation(err))

	badType := commentInput("10.0.0.1")
	badType.RefType = "MATCH"
	_, err = uc.SubmitComment(ctx, badType)
	require.True(t, domain.IsValidation(err))

	missing := commentInput("10.0.0.1")
	missing.RefID = "a404"
	_, err = uc.SubmitComment(ctx, missing)
	require.True(t, domain.IsValidation(err))
}

func TestComments_OnlyApprovedArePublic(t *testing.T) {
	limiter := &stubLimiter{decision: domain.RateLimitDecision{Allowed: true}}
	_, uc, audit := newCommentFixture(t, limiter)
	ctx := context.Background()

	first, err := uc.SubmitComment(ctx, commentInput("1.1.1.1"))
	require.NoError(t, err)
	_, err = uc.SubmitComment(ctx, commentInput("1.1.1.2"))
	require.NoError(t, err)

	public, err := uc.ListApprovedComments(ctx, "ARTICLE", "a1")
	require.NoError(t, err)
	assert.Empty(t, public)

	_, err = uc.ModerateComment(ctx, staff(domain.RoleMatchAdmin), &commentdto.ModerateCommentInput{CommentID: first.ID, Status: "APPROVED"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.ModerateComment(ctx, staff(domain.RoleModerator), &commentdto.ModerateCommentInput{CommentID: first.ID, Status: "APPROVED"})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.AuditCommentModerated}, audit.actions())

	public, err = uc.ListApprovedComments(ctx, "ARTICLE", "a1")
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, first.ID, public[0].ID)

	_, err = uc.ListApprovedComments(ctx, "ARTICLE", "")
	require.True(t, domain.IsValidation(err))
}

func TestListAdminComments_ReturnsWholeQueue(t *testing.T) {
	repo, uc, _ := newCommentFixture(t, &stubLimiter{decision: domain.RateLimitDecision{Allowed: true}})
	for i := 0; i < 120; i++ {
		repo.comments = append(repo.comments, &domain.Comment{ID: fmt.Sprintf("c%d", i), Status: domain.CommentPending})
	}

	all, err := uc.ListAdminComments(context.Background(), staff(domain.RoleModerator), "ALL")
	require.NoError(t, err)
	assert.Len(t, all, 120)

	pending, err := uc.ListAdminComments(context.Background(), staff(domain.RoleModerator), "PENDING")
	require.NoError(t, err)
	assert.Len(t, pending, 120)
}
