package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	commentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/comment"
	"github.com/google/uuid"
)

type CommentUsecase interface {
	SubmitComment(ctx context.Context, input *commentdto.CreateCommentInput) (*domain.Comment, error)
	ListApprovedComments(ctx context.Context, refType, refID string) ([]*domain.Comment, error)

	ListAdminComments(ctx context.Context, actor *domain.Principal, status string) ([]*domain.Comment, error)
	ModerateComment(ctx context.Context, actor *domain.Principal, input *commentdto.ModerateCommentInput) (*domain.Comment, error)
}

type DefaultCommentUsecase struct {
	commentRepo domain.CommentRepository
	targets     domain.TargetResolver
	limiter     domain.RateLimiter
	limit       int
	metrics     *metrics.StoreMetrics
	effects     AdminEffects
	now         func() time.Time
}

func NewDefaultCommentUsecase(
	commentRepo domain.CommentRepository,
	targets domain.TargetResolver,
	limiter domain.RateLimiter,
	limit int,
	storeMetrics *metrics.StoreMetrics,
	effects AdminEffects,
) *DefaultCommentUsecase {
	return &DefaultCommentUsecase{
		commentRepo: commentRepo,
		targets:     targets,
		limiter:     limiter,
		limit:       limit,
		metrics:     storeMetrics,
		effects:     effects,
		now:         time.Now,
	}
}

// SubmitComment stores a PENDING comment. Each (user, ip) pair is rate limited.
func (uc *DefaultCommentUsecase) SubmitComment(ctx context.Context, input *commentdto.CreateCommentInput) (*domain.Comment, error) {
	if input.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	decision, err := uc.limiter.Allow(ctx, fmt.Sprintf("comment:%s:%s", input.UserID, input.ClientIP), uc.limit)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		uc.metrics.RecordRateLimited("comment")
		return nil, &domain.RateLimitedError{RetryAfter: decision.RetryAfter}
	}

	input.Body = strings.TrimSpace(input.Body)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	target, err := domain.ParseCommentTarget(input.RefType, input.RefID)
	if err != nil {
		return nil, err
	}
	if err := uc.resolveTarget(ctx, target); err != nil {
		return nil, err
	}

	now := uc.now()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Target:    target,
		Body:      input.Body,
		Status:    domain.CommentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	uc.metrics.RecordComment()
	return comment, nil
}

func (uc *DefaultCommentUsecase) resolveTarget(ctx context.Context, target domain.CommentTarget) error {
	var (
		exists bool
		err    error
	)
	switch target.Kind {
	case domain.TargetArticle:
		exists, err = uc.targets.ArticleExists(ctx, target.ID)
	case domain.TargetProduct:
		exists, err = uc.targets.ProductExists(ctx, target.ID)
	default:
		return domain.NewValidationError("refType", "refType must be ARTICLE or PRODUCT")
	}
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewValidationError("refId", "%s %s not found", strings.ToLower(string(target.Kind)), target.ID)
	}
	return nil
}

func (uc *DefaultCommentUsecase) ListApprovedComments(ctx context.Context, refType, refID string) ([]*domain.Comment, error) {
	target, err := domain.ParseCommentTarget(refType, refID)
	if err != nil {
		return nil, err
	}
	return uc.commentRepo.ListComments(ctx, domain.CommentFilter{Target: &target, Status: domain.CommentApproved})
}

func (uc *DefaultCommentUsecase) ListAdminComments(ctx context.Context, actor *domain.Principal, status string) ([]*domain.Comment, error) {
	if err := authorize(actor, domain.CommunityRoles); err != nil {
		return nil, err
	}
	var filter domain.CommentFilter
	if status != "" && status != "ALL" {
		st := domain.CommentStatus(status)
		if !st.Valid() {
			return nil, domain.NewValidationError("status", "status must be one of ALL, PENDING, APPROVED, REJECTED")
		}
		filter.Status = st
	}
	return uc.commentRepo.ListComments(ctx, filter)
}

func (uc *DefaultCommentUsecase) ModerateComment(ctx context.Context, actor *domain.Principal, input *commentdto.ModerateCommentInput) (*domain.Comment, error) {
	if err := authorize(actor, domain.CommunityRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	comment, err := uc.commentRepo.UpdateCommentStatus(ctx, input.CommentID, domain.CommentStatus(input.Status))
	if err != nil {
		return nil, err
	}

	paths := []string{"/admin/comments"}
	switch comment.Target.Kind {
	case domain.TargetArticle:
		paths = append(paths, "/news")
	case domain.TargetProduct:
		paths = append(paths, "/store")
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditCommentModerated,
		targetType: domain.TargetTypeComment,
		targetID:   comment.ID,
		meta:       map[string]any{"status": comment.Status},
	}, paths...)
	return comment, nil
}
