package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/metrics"
	polldto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/poll"
	"github.com/google/uuid"
)

type IPHasher interface {
	Hash(ip string) string
}

type PollUsecase interface {
	Vote(ctx context.Context, input *polldto.VoteInput) (*domain.PollVote, error)
	GetActivePoll(ctx context.Context) (*polldto.PollWithTally, error)
	GetResults(ctx context.Context, pollID string) (*polldto.PollWithTally, error)

	ListPolls(ctx context.Context, actor *domain.Principal) ([]*polldto.PollWithTally, error)
	UpsertPoll(ctx context.Context, actor *domain.Principal, input *polldto.UpsertPollInput) (*domain.Poll, error)
	UpdatePollStatus(ctx context.Context, actor *domain.Principal, input *polldto.UpdatePollStatusInput) error
	DeletePoll(ctx context.Context, actor *domain.Principal, pollID string) error
}

type DefaultPollUsecase struct {
	pollRepo domain.PollRepository
	ipHasher IPHasher
	metrics  *metrics.StoreMetrics
	effects  AdminEffects
	now      func() time.Time
}

func NewDefaultPollUsecase(pollRepo domain.PollRepository, ipHasher IPHasher, storeMetrics *metrics.StoreMetrics, effects AdminEffects) *DefaultPollUsecase {
	return &DefaultPollUsecase{
		pollRepo: pollRepo,
		ipHasher: ipHasher,
		metrics:  storeMetrics,
		effects:  effects,
		now:      time.Now,
	}
}

// Vote appends one vote. A caller is identified by user id when signed in
// and by hashed client IP otherwise; either match rejects a second vote.
func (uc *DefaultPollUsecase) Vote(ctx context.Context, input *polldto.VoteInput) (*domain.PollVote, error) {
	vote, err := uc.vote(ctx, input)
	switch {
	case err == nil:
		uc.metrics.RecordVote("accepted")
	case errors.Is(err, domain.ErrAlreadyVoted):
		uc.metrics.RecordVote("duplicate")
	default:
		uc.metrics.RecordVote("rejected")
	}
	return vote, err
}

func (uc *DefaultPollUsecase) vote(ctx context.Context, input *polldto.VoteInput) (*domain.PollVote, error) {
	poll, err := uc.pollRepo.GetPollByID(ctx, input.PollID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPollNotFound
		}
		return nil, err
	}
	if input.OptionKey == "" || !poll.HasOption(input.OptionKey) {
		return nil, domain.ErrInvalidOption
	}

	identity := domain.VoterIdentity{
		UserID: input.UserID,
		IPHash: uc.ipHasher.Hash(input.ClientIP),
	}
	_, err = uc.pollRepo.FindVote(ctx, poll.ID, identity)
	if err == nil {
		return nil, domain.ErrAlreadyVoted
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	vote := &domain.PollVote{
		ID:        uuid.New().String(),
		PollID:    poll.ID,
		OptionKey: input.OptionKey,
		UserID:    identity.UserID,
		IPHash:    identity.IPHash,
		CreatedAt: uc.now(),
	}
	if err := uc.pollRepo.CreateVote(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}

func (uc *DefaultPollUsecase) GetActivePoll(ctx context.Context) (*polldto.PollWithTally, error) {
	poll, err := uc.pollRepo.GetActivePoll(ctx, uc.now())
	if err != nil {
		return nil, err
	}
	return uc.withTally(ctx, poll)
}

func (uc *DefaultPollUsecase) GetResults(ctx context.Context, pollID string) (*polldto.PollWithTally, error) {
	poll, err := uc.pollRepo.GetPollByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrPollNotFound
		}
		return nil, err
	}
	return uc.withTally(ctx, poll)
}

func (uc *DefaultPollUsecase) withTally(ctx context.Context, poll *domain.Poll) (*polldto.PollWithTally, error) {
	counts, err := uc.pollRepo.CountVotesByOption(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	tally := &domain.PollTally{PollID: poll.ID, Counts: make(map[string]int64, len(poll.Options))}
	for key := range poll.Options {
		tally.Counts[key] = counts[key]
		tally.Total += counts[key]
	}
	return &polldto.PollWithTally{Poll: poll, Tally: tally}, nil
}

func (uc *DefaultPollUsecase) ListPolls(ctx context.Context, actor *domain.Principal) ([]*polldto.PollWithTally, error) {
	if err := authorize(actor, domain.PollRoles); err != nil {
		return nil, err
	}
	polls, err := uc.pollRepo.ListPolls(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*polldto.PollWithTally, 0, len(polls))
	for _, poll := range polls {
		p, err := uc.withTally(ctx, poll)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (uc *DefaultPollUsecase) UpsertPoll(ctx context.Context, actor *domain.Principal, input *polldto.UpsertPollInput) (*domain.Poll, error) {
	if err := authorize(actor, domain.PollRoles); err != nil {
		return nil, err
	}
	input.Question = strings.TrimSpace(input.Question)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	options := make(map[string]string, len(input.Options))
	for _, opt := range input.Options {
		if _, dup := options[opt.Key]; dup {
			return nil, domain.NewValidationError("options", "option key %q is duplicated", opt.Key)
		}
		options[opt.Key] = opt.Label
	}

	isNew := input.ID == ""
	poll := &domain.Poll{
		ID:       input.ID,
		Question: input.Question,
		Options:  options,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
	}
	if err := uc.pollRepo.UpsertPoll(ctx, poll); err != nil {
		return nil, err
	}

	action := domain.AuditPollUpdated
	if isNew {
		action = domain.AuditPollCreated
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     action,
		targetType: domain.TargetTypePoll,
		targetID:   poll.ID,
		meta:       map[string]any{"question": poll.Question},
	}, "/admin/polls", "/")
	return poll, nil
}

func (uc *DefaultPollUsecase) UpdatePollStatus(ctx context.Context, actor *domain.Principal, input *polldto.UpdatePollStatusInput) error {
	if err := authorize(actor, domain.PollRoles); err != nil {
		return err
	}
	if err := validateInput(input); err != nil {
		return err
	}
	if err := uc.pollRepo.UpdatePollStatus(ctx, input.PollID, domain.PollStatus(input.Status)); err != nil {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditPollStatusUpdated,
		targetType: domain.TargetTypePoll,
		targetID:   input.PollID,
		meta:       map[string]any{"status": input.Status},
	}, "/admin/polls", "/")
	return nil
}

func (uc *DefaultPollUsecase) DeletePoll(ctx context.Context, actor *domain.Principal, pollID string) error {
	if err := authorize(actor, domain.PollRoles); err != nil {
		return err
	}
	if err := uc.pollRepo.DeletePoll(ctx, pollID); err != nil {
		return err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditPollDeleted,
		targetType: domain.TargetTypePoll,
		targetID:   pollID,
	}, "/admin/polls", "/")
	return nil
}
