package domain

import (
	"context"
	"fmt"
	"time"
)

type CommentStatus string

const (
	CommentPending  CommentStatus = "PENDING"
	CommentApproved CommentStatus = "APPROVED"
	CommentRejected CommentStatus = "REJECTED"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected:
		return true
	}
	return false
}

type TargetKind string

const (
	TargetArticle TargetKind = "ARTICLE"
	TargetProduct TargetKind = "PRODUCT"
)

// CommentTarget is the thing a comment is attached to.
type CommentTarget struct {
	Kind TargetKind
	ID   string
}

func ArticleTarget(id string) CommentTarget { return CommentTarget{Kind: TargetArticle, ID: id} }
func ProductTarget(id string) CommentTarget { return CommentTarget{Kind: TargetProduct, ID: id} }

func ParseCommentTarget(kind, id string) (CommentTarget, error) {
	if id == "" {
		return CommentTarget{}, NewValidationError("refId", "refId is required")
	}
	switch TargetKind(kind) {
	case TargetArticle:
		return ArticleTarget(id), nil
	case TargetProduct:
		return ProductTarget(id), nil
	default:
		return CommentTarget{}, NewValidationError("refType", "refType must be ARTICLE or PRODUCT")
	}
}

func (t CommentTarget) String() string {
	return fmt.Sprintf("%s:%s", t.Kind, t.ID)
}

type Comment struct {
	ID         string
	UserID     string
	AuthorName string
	Target     CommentTarget
	Body       string
	Status     CommentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CommentFilter struct {
	Target *CommentTarget
	Status CommentStatus
}

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *Comment) error
	// ListComments returns the newest comments first.
	ListComments(ctx context.Context, filter CommentFilter) ([]*Comment, error)
	UpdateCommentStatus(ctx context.Context, commentID string, status CommentStatus) (*Comment, error)
	CountCommentsByStatus(ctx context.Context, status CommentStatus) (int64, error)
}

// TargetResolver checks that a comment target exists.
type TargetResolver interface {
	ArticleExists(ctx context.Context, id string) (bool, error)
	ProductExists(ctx context.Context, id string) (bool, error)
}
