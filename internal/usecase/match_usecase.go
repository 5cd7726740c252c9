package usecase

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	contentdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/content"
	pagingdto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/paging"
)

const (
	defaultUpcomingLimit     = 5
	defaultPastMatchPageSize = 10
)

type MatchUsecase interface {
	ListUpcoming(ctx context.Context, limit int) ([]*domain.Match, error)
	ListPast(ctx context.Context, page, pageSize int) (*pagingdto.Page[*domain.Match], error)
	GetMatch(ctx context.Context, matchID string) (*domain.Match, error)

	ListAdminMatches(ctx context.Context, actor *domain.Principal, input *contentdto.ListMatchesInput) ([]*domain.Match, error)
	UpsertMatch(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertMatchInput) (*domain.Match, error)
	DeleteMatch(ctx context.Context, actor *domain.Principal, matchID string) error
}

type DefaultMatchUsecase struct {
	matchRepo domain.MatchRepository
	effects   AdminEffects
}

func NewDefaultMatchUsecase(matchRepo domain.MatchRepository, effects AdminEffects) *DefaultMatchUsecase {
	return &DefaultMatchUsecase{matchRepo: matchRepo, effects: effects}
}

// ListUpcoming returns scheduled and live fixtures, soonest first.
func (uc *DefaultMatchUsecase) ListUpcoming(ctx context.Context, limit int) ([]*domain.Match, error) {
	if limit < 1 {
		limit = defaultUpcomingLimit
	}
	matches, _, err := uc.matchRepo.ListMatches(ctx, domain.MatchFilter{
		Statuses:  []domain.MatchStatus{domain.MatchScheduled, domain.MatchLive},
		Ascending: true,
		Page:      1,
		PageSize:  limit,
	})
	return matches, err
}

// ListPast pages through finished matches, most recent first.
func (uc *DefaultMatchUsecase) ListPast(ctx context.Context, page, pageSize int) (*pagingdto.Page[*domain.Match], error) {
	page, pageSize = defaultPage(page, pageSize, defaultPastMatchPageSize)
	matches, total, err := uc.matchRepo.ListMatches(ctx, domain.MatchFilter{
		Statuses: []domain.MatchStatus{domain.MatchFinished},
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, err
	}
	return &pagingdto.Page[*domain.Match]{Items: matches, Total: total, Page: page, PageSize: pageSize}, nil
}

func (uc *DefaultMatchUsecase) GetMatch(ctx context.Context, matchID string) (*domain.Match, error) {
	return uc.matchRepo.GetMatch(ctx, matchID)
}

func (uc *DefaultMatchUsecase) ListAdminMatches(ctx context.Context, actor *domain.Principal, input *contentdto.ListMatchesInput) ([]*domain.Match, error) {
	if err := authorize(actor, domain.MatchRoles); err != nil {
		return nil, err
	}
	filter := domain.MatchFilter{Competition: input.Competition}
	if input.Status != "" && input.Status != "ALL" {
		st := domain.MatchStatus(input.Status)
		if !st.Valid() {
			return nil, domain.NewValidationError("status", "status must be one of ALL, SCHEDULED, LIVE, FINISHED, POSTPONED")
		}
		filter.Statuses = []domain.MatchStatus{st}
	}
	matches, _, err := uc.matchRepo.ListMatches(ctx, filter)
	return matches, err
}

func (uc *DefaultMatchUsecase) UpsertMatch(ctx context.Context, actor *domain.Principal, input *contentdto.UpsertMatchInput) (*domain.Match, error) {
	if err := authorize(actor, domain.MatchRoles); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	match := &domain.Match{
		ID:            input.ID,
		Opponent:      input.Opponent,
		EventDate:     input.EventDate,
		Venue:         input.Venue,
		Competition:   input.Competition,
		Status:        domain.MatchStatus(input.Status),
		ScoreHome:     input.ScoreHome,
		ScoreAway:     input.ScoreAway,
		HighlightText: input.HighlightText,
		HighlightURL:  input.HighlightURL,
	}
	if match.Status == "" {
		match.Status = domain.MatchScheduled
	}

	isNew := input.ID == ""
	if !isNew {
		existing, err := uc.matchRepo.GetMatch(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		match.CreatedAt = existing.CreatedAt
	}
	if err := uc.matchRepo.UpsertMatch(ctx, match); err != nil {
		return nil, err
	}

	action := domain.AuditMatchUpdated
	if isNew {
		action = domain.AuditMatchCreated
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypeMatch,
		targetID:   match.ID,
		meta:       map[string]any{"opponent": match.Opponent, "status": match.Status},
	}, "/admin/matches", "/matches", "/matches/"+match.ID)
	return match, nil
}

func (uc *DefaultMatchUsecase) DeleteMatch(ctx context.Context, actor *domain.Principal, matchID string) error {
	if err := authorize(actor, domain.MatchRoles); err != nil {
		return err
	}
	if err := uc.matchRepo.DeleteMatch(ctx, matchID); err != nil {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditMatchDeleted,
		targetType: domain.TargetTypeMatch,
		targetID:   matchID,
	}, "/admin/matches", "/matches", "/matches/"+matchID)
	return nil
}
