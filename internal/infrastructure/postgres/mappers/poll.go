package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainPoll(m *models.PollModel) *domain.Poll {
	return &domain.Poll{
		ID:        m.ID,
		Question:  m.Question,
		Options:   m.Options.Data(),
		Status:    m.Status,
		StartsAt:  m.StartsAt,
		EndsAt:    m.EndsAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGORMPoll(p *domain.Poll) *models.PollModel {
	return &models.PollModel{
		ID:        p.ID,
		Question:  p.Question,
		Options:   datatypes.NewJSONType(p.Options),
		Status:    p.Status,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToDomainPollVote(m *models.PollVoteModel) *domain.PollVote {
	vote := &domain.PollVote{
		ID:        m.ID,
		PollID:    m.PollID,
		OptionKey: m.OptionKey,
		CreatedAt: m.CreatedAt,
	}
	if m.UserID != nil {
		vote.UserID = *m.UserID
	}
	if m.IPHash != nil {
		vote.IPHash = *m.IPHash
	}
	return vote
}

func ToGORMPollVote(v *domain.PollVote) *models.PollVoteModel {
	return &models.PollVoteModel{
		ID:        v.ID,
		PollID:    v.PollID,
		OptionKey: v.OptionKey,
		UserID:    nullable(v.UserID),
		IPHash:    nullable(v.IPHash),
		CreatedAt: v.CreatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
