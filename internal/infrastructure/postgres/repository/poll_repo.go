package repository

import (
	"context"
	"errors"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultPollRepository struct {
	DB *gorm.DB
}

func NewDefaultPollRepository(db *gorm.DB) *DefaultPollRepository {
	return &DefaultPollRepository{DB: db}
}

func (r *DefaultPollRepository) GetPollByID(ctx context.Context, pollID string) (*domain.Poll, error) {
	if !validID(pollID) {
		return nil, domain.ErrNotFound
	}
	var poll models.PollModel
	if err := r.DB.WithContext(ctx).First(&poll, "id = ?", pollID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainPoll(&poll), nil
}

func (r *DefaultPollRepository) GetActivePoll(ctx context.Context, now time.Time) (*domain.Poll, error) {
	var poll models.PollModel
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.PollStatusActive).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		First(&poll).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainPoll(&poll), nil
}

func (r *DefaultPollRepository) ListPolls(ctx context.Context) ([]*domain.Poll, error) {
	var pollModels []models.PollModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&pollModels).Error; err != nil {
		return nil, err
	}
	polls := make([]*domain.Poll, 0, len(pollModels))
	for i := range pollModels {
		polls = append(polls, mappers.ToDomainPoll(&pollModels[i]))
	}
	return polls, nil
}

func (r *DefaultPollRepository) UpsertPoll(ctx context.Context, poll *domain.Poll) error {
	db := r.DB.WithContext(ctx)
	if poll.ID == "" {
		poll.ID = uuid.New().String()
		if poll.Status == "" {
			poll.Status = domain.PollStatusActive
		}
		return db.Create(mappers.ToGORMPoll(poll)).Error
	}
	if !validID(poll.ID) {
		return domain.ErrPollNotFound
	}
	m := mappers.ToGORMPoll(poll)
	res := db.Model(&models.PollModel{}).
		Where("id = ?", poll.ID).
		Updates(map[string]any{
			"question":     m.Question,
			"options_json": m.Options,
			"starts_at":    m.StartsAt,
			"ends_at":      m.EndsAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *DefaultPollRepository) UpdatePollStatus(ctx context.Context, pollID string, status domain.PollStatus) error {
	if !validID(pollID) {
		return domain.ErrPollNotFound
	}
	res := r.DB.WithContext(ctx).Model(&models.PollModel{}).
		Where("id = ?", pollID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPollNotFound
	}
	return nil
}

func (r *DefaultPollRepository) DeletePoll(ctx context.Context, pollID string) error {
	if !validID(pollID) {
		return domain.ErrPollNotFound
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.PollVoteModel{}, "poll_id = ?", pollID).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.PollModel{}, "id = ?", pollID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPollNotFound
		}
		return nil
	})
}

// FindVote matches any vote on the poll when identity is empty.
func (r *DefaultPollRepository) FindVote(ctx context.Context, pollID string, identity domain.VoterIdentity) (*domain.PollVote, error) {
	query := r.DB.WithContext(ctx).Where("poll_id = ?", pollID)
	switch {
	case identity.UserID != "" && identity.IPHash != "":
		query = query.Where("user_id = ? OR ip_hash = ?", identity.UserID, identity.IPHash)
	case identity.UserID != "":
		query = query.Where("user_id = ?", identity.UserID)
	case identity.IPHash != "":
		query = query.Where("ip_hash = ?", identity.IPHash)
	}

	var vote models.PollVoteModel
	if err := query.First(&vote).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainPollVote(&vote), nil
}

// CreateVote reports a lost race on the unique vote indexes as ErrAlreadyVoted.
func (r *DefaultPollRepository) CreateVote(ctx context.Context, vote *domain.PollVote) error {
	err := r.DB.WithContext(ctx).Create(mappers.ToGORMPollVote(vote)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrAlreadyVoted
	}
	return err
}

type optionCount struct {
	OptionKey string
	Count     int64
}

func (r *DefaultPollRepository) CountVotesByOption(ctx context.Context, pollID string) (map[string]int64, error) {
	var rows []optionCount
	if err := r.DB.WithContext(ctx).Model(&models.PollVoteModel{}).
		Select("option_key, COUNT(*) AS count").
		Where("poll_id = ?", pollID).
		Group("option_key").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.OptionKey] = row.Count
	}
	return counts, nil
}
