package polldto

import "time"

type VoteInput struct {
	PollID    string `json:"-"`
	OptionKey string `json:"optionKey"`
	UserID    string `json:"-"`
	ClientIP  string `json:"-"`
}

type PollOptionInput struct {
	Key   string `json:"key" validate:"required"`
	Label string `json:"label" validate:"required"`
}

type UpsertPollInput struct {
	ID       string            `json:"id"`
	Question string            `json:"question" validate:"min=4"`
	Options  []PollOptionInput `json:"options" validate:"min=2,dive"`
	StartsAt *time.Time        `json:"startsAt"`
	EndsAt   *time.Time        `json:"endsAt"`
}

type UpdatePollStatusInput struct {
	PollID string `json:"-" validate:"required"`
	Status string `json:"status" validate:"oneof=ACTIVE INACTIVE ARCHIVED"`
}
