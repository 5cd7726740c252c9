package usecase

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	pagingdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/paging"
)

const defaultAuditPageSize = 20

type AuditUsecase interface {
	ListAuditLogs(ctx context.Context, actor *domain.Principal, filter domain.AuditLogFilter) (*pagingdto.Page[*domain.AuditLog], error)
}

type DefaultAuditUsecase struct {
	auditRepo domain.AuditLogRepository
}

func NewDefaultAuditUsecase(auditRepo domain.AuditLogRepository) *DefaultAuditUsecase {
	return &DefaultAuditUsecase{auditRepo: auditRepo}
}

func (uc *DefaultAuditUsecase) ListAuditLogs(ctx context.Context, actor *domain.Principal, filter domain.AuditLogFilter) (*pagingdto.Page[*domain.AuditLog], error) {
	if err := authorize(actor, domain.AuditRoles); err != nil {
		return nil, err
	}
	filter.Page, filter.PageSize = defaultPage(filter.Page, filter.PageSize, defaultAuditPageSize)
	logs, total, err := uc.auditRepo.ListAuditLogs(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &pagingdto.Page[*domain.AuditLog]{Items: logs, Total: total, Page: filter.Page, PageSize: filter.PageSize}, nil
}
