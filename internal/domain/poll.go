package domain

import (
	"context"
	"time"
)

type PollStatus string

const (
	PollStatusActive   PollStatus = "ACTIVE"
	PollStatusInactive PollStatus = "INACTIVE"
	PollStatusArchived PollStatus = "ARCHIVED"
)

func (s PollStatus) Valid() bool {
	switch s {
	case PollStatusActive, PollStatusInactive, PollStatusArchived:
		return true
	}
	return false
}

type PollOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Poll struct {
	ID        string
	Question  string
	Options   map[string]string
	Status    PollStatus
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Poll) HasOption(key string) bool {
	_, ok := p.Options[key]
	return ok
}

// PollVote is attributed to a user when authenticated, else to a hashed IP.
type PollVote struct {
	ID        string
	PollID    string
	OptionKey string
	UserID    string
	IPHash    string
	CreatedAt time.Time
}

// VoterIdentity holds the identity conditions checked for duplicate votes.
// Empty fields are not part of the lookup.
type VoterIdentity struct {
	UserID string
	IPHash string
}

func (v VoterIdentity) Empty() bool {
	return v.UserID == "" && v.IPHash == ""
}

type PollTally struct {
	PollID string
	Counts map[string]int64
	Total  int64
}

type PollRepository interface {
	GetPollByID(ctx context.Context, pollID string) (*Poll, error)
	GetActivePoll(ctx context.Context, now time.Time) (*Poll, error)
	ListPolls(ctx context.Context) ([]*Poll, error)
	UpsertPoll(ctx context.Context, poll *Poll) error
	UpdatePollStatus(ctx context.Context, pollID string, status PollStatus) error
	DeletePoll(ctx context.Context, pollID string) error

	// FindVote returns a vote on pollID matching any non-empty identity
	// field, or ErrNotFound.
	FindVote(ctx context.Context, pollID string, identity VoterIdentity) (*PollVote, error)
	CreateVote(ctx context.Context, vote *PollVote) error
	CountVotesByOption(ctx context.Context, pollID string) (map[string]int64, error)
}
