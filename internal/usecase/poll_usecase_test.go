package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	polldto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/poll"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPollRepo struct {
	mu    sync.Mutex
	polls map[string]*domain.Poll
	votes []*domain.PollVote
}

func newMemPollRepo(polls ...*domain.Poll) *memPollRepo {
	r := &memPollRepo{polls: map[string]*domain.Poll{}}
	for _, p := range polls {
		r.polls[p.ID] = p
	}
	return r
}

func (r *memPollRepo) GetPollByID(_ context.Context, pollID string) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[pollID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (r *memPollRepo) GetActivePoll(_ context.Context, now time.Time) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var newest *domain.Poll
	for _, p := range r.polls {
		if p.Status != domain.PollStatusActive {
			continue
		}
		if (p.StartsAt != nil && now.Before(*p.StartsAt)) || (p.EndsAt != nil && now.After(*p.EndsAt)) {
			continue
		}
		if newest == nil || p.CreatedAt.After(newest.CreatedAt) {
			newest = p
		}
	}
	if newest == nil {
		return nil, domain.ErrNotFound
	}
	return newest, nil
}

func (r *memPollRepo) ListPolls(context.Context) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Poll, 0, len(r.polls))
	for _, p := range r.polls {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPollRepo) UpsertPoll(_ context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if poll.ID == "" {
		poll.ID = uuid.New().String()
		poll.Status = domain.PollStatusActive
	} else if _, ok := r.polls[poll.ID]; !ok {
		return domain.ErrPollNotFound
	}
	r.polls[poll.ID] = poll
	return nil
}

func (r *memPollRepo) UpdatePollStatus(_ context.Context, pollID string, status domain.PollStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.polls[pollID]
	if !ok {
		return domain.ErrPollNotFound
	}
	p.Status = status
	return nil
}

func (r *memPollRepo) DeletePoll(_ context.Context, pollID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.polls[pollID]; !ok {
		return domain.ErrPollNotFound
	}
	delete(r.polls, pollID)
	return nil
}

func (r *memPollRepo) FindVote(_ context.Context, pollID string, identity domain.VoterIdentity) (*domain.PollVote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.votes {
		if v.PollID != pollID {
			continue
		}
		if identity.Empty() ||
			(identity.UserID != "" && v.UserID == identity.UserID) ||
			(identity.IPHash != "" && v.IPHash == identity.IPHash) {
			return v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memPollRepo) CreateVote(_ context.Context, vote *domain.PollVote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.votes = append(r.votes, vote)
	return nil
}

func (r *memPollRepo) CountVotesByOption(_ context.Context, pollID string) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, v := range r.votes {
		if v.PollID == pollID {
			counts[v.OptionKey]++
		}
	}
	return counts, nil
}

func matchdayPoll() *domain.Poll {
	return &domain.Poll{
		ID:        "poll-1",
		Question:  "Man of the match?",
		Options:   map[string]string{"a": "Striker", "b": "Keeper"},
		Status:    domain.PollStatusActive,
		CreatedAt: time.Now().Add(-time.Hour),
	}
}

func newPollFixture() (*memPollRepo, *DefaultPollUsecase, *recordingAudit) {
	repo := newMemPollRepo(matchdayPoll())
	audit := &recordingAudit{}
	uc := NewDefaultPollUsecase(repo, prefixHasher{}, newTestMetrics(), AdminEffects{Audit: audit, Invalidator: &recordingInvalidator{}})
	return repo, uc, audit
}

func TestVote_RejectsDuplicateByUser(t *testing.T) {
	_, uc, _ := newPollFixture()
	ctx := context.Background()

	vote, err := uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "a", UserID: "u1", ClientIP: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", vote.UserID)
	assert.Equal(t, "h:10.0.0.1", vote.IPHash)

	// same user from another network
	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "b", UserID: "u1", ClientIP: "10.0.0.2"})
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestVote_RejectsDuplicateByIP(t *testing.T) {
	_, uc, _ := newPollFixture()
	ctx := context.Background()

	_, err := uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "a", ClientIP: "10.0.0.1"})
	require.NoError(t, err)

	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "a", ClientIP: "10.0.0.1"})
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)

	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "a", UserID: "u9", ClientIP: "10.0.0.1"})
	require.ErrorIs(t, err, domain.ErrAlreadyVoted)

	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "b", ClientIP: "10.0.0.7"})
	require.NoError(t, err)
}

func TestVote_Errors(t *testing.T) {
	_, uc, _ := newPollFixture()
	ctx := context.Background()

	_, err := uc.Vote(ctx, &polldto.VoteInput{PollID: "missing", OptionKey: "a", UserID: "u1"})
	require.ErrorIs(t, err, domain.ErrPollNotFound)

	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: "z", UserID: "u1"})
	require.ErrorIs(t, err, domain.ErrInvalidOption)

	_, err = uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", UserID: "u1"})
	require.ErrorIs(t, err, domain.ErrInvalidOption)
}

func TestActivePollTally(t *testing.T) {
	_, uc, _ := newPollFixture()
	ctx := context.Background()
	for i, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		key := "a"
		if i == 2 {
			key = "b"
		}
		_, err := uc.Vote(ctx, &polldto.VoteInput{PollID: "poll-1", OptionKey: key, ClientIP: ip})
		require.NoError(t, err)
	}

	got, err := uc.GetActivePoll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "poll-1", got.Poll.ID)
	assert.Equal(t, int64(3), got.Tally.Total)
	assert.Equal(t, map[string]int64{"a": 2, "b": 1}, got.Tally.Counts)
}

func TestUpsertPoll(t *testing.T) {
	repo, uc, audit := newPollFixture()
	ctx := context.Background()
	input := &polldto.UpsertPollInput{
		Question: "Best away day?",
		Options:  []polldto.PollOptionInput{{Key: "x", Label: "Bandung"}, {Key: "y", Label: "Surabaya"}},
	}

	_, err := uc.UpsertPoll(ctx, staff(domain.RoleContentAdmin), input)
	require.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, audit.actions())

	poll, err := uc.UpsertPoll(ctx, staff(domain.RoleModerator), input)
	require.NoError(t, err)
	assert.Equal(t, domain.PollStatusActive, repo.polls[poll.ID].Status)
	assert.Equal(t, []string{domain.AuditPollCreated}, audit.actions())

	input.Options = input.Options[:1]
	_, err = uc.UpsertPoll(ctx, staff(domain.RoleModerator), input)
	require.True(t, domain.IsValidation(err))
}
