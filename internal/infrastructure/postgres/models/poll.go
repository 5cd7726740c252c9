package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"gorm.io/datatypes"
)

type PollModel struct {
	ID        string                                `gorm:"primaryKey;type:uuid"`
	Question  string                                `gorm:"not null"`
	Options   datatypes.JSONType[map[string]string] `gorm:"column:options_json"`
	Status    domain.PollStatus                     `gorm:"type:varchar(16);index;not null"`
	StartsAt  *time.Time
	EndsAt    *time.Time
	Votes     []PollVoteModel `gorm:"foreignKey:PollID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PollModel) TableName() string {
	return "polls"
}

// PollVoteModel allows at most one vote per (poll, user) and per (poll, ip hash).
type PollVoteModel struct {
	ID        string  `gorm:"primaryKey;type:uuid"`
	PollID    string  `gorm:"type:uuid;not null;uniqueIndex:idx_vote_poll_user;uniqueIndex:idx_vote_poll_ip"`
	OptionKey string  `gorm:"not null"`
	UserID    *string `gorm:"type:uuid;uniqueIndex:idx_vote_poll_user"`
	IPHash    *string `gorm:"column:ip_hash;uniqueIndex:idx_vote_poll_ip"`
	CreatedAt time.Time
}

func (PollVoteModel) TableName() string {
	return "poll_votes"
}
