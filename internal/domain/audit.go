package domain

import (
	"context"
	"time"
)

type AuditLog struct {
	ID         string
	ActorID    string
	Actor      *User
	Action     string
	TargetType string
	TargetID   string
	Meta       map[string]any
	CreatedAt  time.Time
}

type AuditLogFilter struct {
	ActorID    string
	Action     string
	TargetType string
	Page       int
	PageSize   int
}

type AuditLogRepository interface {
	CreateAuditLog(ctx context.Context, entry *AuditLog) error
	ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]*AuditLog, int64, error)
}

// AuditRecorder appends audit entries. Implementations never fail the caller.
type AuditRecorder interface {
	Record(ctx context.Context, entry AuditLog)
}

const (
	AuditArticleCreated         = "ARTICLE_CREATED"
	AuditArticleUpdated         = "ARTICLE_UPDATED"
	AuditArticleDeleted         = "ARTICLE_DELETED"
	AuditProductCreated         = "PRODUCT_CREATED"
	AuditProductUpdated         = "PRODUCT_UPDATED"
	AuditCouponCreated          = "COUPON_CREATED"
	AuditCouponUpdated          = "COUPON_UPDATED"
	AuditPollCreated            = "POLL_CREATED"
	AuditPollUpdated            = "POLL_UPDATED"
	AuditPollDeleted            = "POLL_DELETED"
	AuditPollStatusUpdated      = "POLL_STATUS_UPDATED"
	AuditMatchCreated           = "MATCH_CREATED"
	AuditMatchUpdated           = "MATCH_UPDATED"
	AuditMatchDeleted           = "MATCH_DELETED"
	AuditPageCreated            = "PAGE_CREATED"
	AuditPageUpdated            = "PAGE_UPDATED"
	AuditPageDeleted            = "PAGE_DELETED"
	AuditMediaCreated           = "MEDIA_CREATED"
	AuditMediaDeleted           = "MEDIA_DELETED"
	AuditOrderStatusUpdated     = "ORDER_STATUS_UPDATED"
	AuditShipmentUpdated        = "SHIPMENT_UPDATED"
	AuditCommentModerated       = "COMMENT_MODERATED"
	AuditVolunteerStatusUpdated = "VOLUNTEER_STATUS_UPDATED"
)

// Audit target types.
const (
	TargetTypeArticle   = "ARTICLE"
	TargetTypeProduct   = "PRODUCT"
	TargetTypeCoupon    = "COUPON"
	TargetTypePoll      = "POLL"
	TargetTypeMatch     = "MATCH"
	TargetTypePage      = "PAGE"
	TargetTypeMedia     = "MEDIA"
	TargetTypeOrder     = "ORDER"
	TargetTypeComment   = "COMMENT"
	TargetTypeVolunteer = "VOLUNTEER"
)
