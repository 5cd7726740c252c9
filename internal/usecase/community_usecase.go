package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	communitydto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/community"
	"github.com/google/uuid"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type CommunityUsecase interface {
	Subscribe(ctx context.Context, input *communitydto.SubscribeInput) (*domain.NewsletterSubscriber, error)
	SubmitVolunteer(ctx context.Context, input *communitydto.VolunteerInput) (*domain.Volunteer, error)

	ListSubscribers(ctx context.Context, actor *domain.Principal) ([]*domain.NewsletterSubscriber, error)
	// ExportSubscribers writes every subscriber as CSV with the header
	// email,verified,created_at.
	ExportSubscribers(ctx context.Context, actor *domain.Principal, w io.Writer) error
	ListVolunteers(ctx context.Context, actor *domain.Principal) ([]*domain.Volunteer, error)
	UpdateVolunteerStatus(ctx context.Context, actor *domain.Principal, input *communitydto.UpdateVolunteerStatusInput) (*domain.Volunteer, error)
}

type DefaultCommunityUsecase struct {
	newsletterRepo domain.NewsletterRepository
	volunteerRepo  domain.VolunteerRepository
	effects        AdminEffects
	now            func() time.Time
}

func NewDefaultCommunityUsecase(newsletterRepo domain.NewsletterRepository, volunteerRepo domain.VolunteerRepository, effects AdminEffects) *DefaultCommunityUsecase {
	return &DefaultCommunityUsecase{
		newsletterRepo: newsletterRepo,
		volunteerRepo:  volunteerRepo,
		effects:        effects,
		now:            time.Now,
	}
}

// Subscribe is idempotent per email.
func (uc *DefaultCommunityUsecase) Subscribe(ctx context.Context, input *communitydto.SubscribeInput) (*domain.NewsletterSubscriber, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateInput(input); err != nil {
		return nil, err
	}
	sub := &domain.NewsletterSubscriber{Email: input.Email}
	if err := uc.newsletterRepo.UpsertSubscriber(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (uc *DefaultCommunityUsecase) SubmitVolunteer(ctx context.Context, input *communitydto.VolunteerInput) (*domain.Volunteer, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}
	now := uc.now()
	v := &domain.Volunteer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Skills:    input.Skills,
		Notes:     input.Notes,
		Status:    domain.VolunteerStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.volunteerRepo.CreateVolunteer(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *DefaultCommunityUsecase) ListSubscribers(ctx context.Context, actor *domain.Principal) ([]*domain.NewsletterSubscriber, error) {
	if err := authorize(actor, domain.CommunityRoles); err != nil {
		return nil, err
	}
	return uc.newsletterRepo.ListSubscribers(ctx)
}

func (uc *DefaultCommunityUsecase) ExportSubscribers(ctx context.Context, actor *domain.Principal, w io.Writer) error {
	subs, err := uc.ListSubscribers(ctx, actor)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"email", "verified", "created_at"}); err != nil {
		return err
	}
	for _, sub := range subs {
		verified := "no"
		if sub.Verified {
			verified = "yes"
		}
		if err := cw.Write([]string{sub.Email, verified, sub.CreatedAt.UTC().Format(isoMillis)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (uc *DefaultCommunityUsecase) ListVolunteers(ctx context.Context, actor *domain.Principal) ([]*domain.Volunteer, error) {
	if err := authorize(actor, domain.CommunityRoles); err != nil {
		return nil, err
	}
	return uc.volunteerRepo.ListVolunteers(ctx)
}

func (uc *DefaultCommunityUsecase) UpdateVolunteerStatus(ctx context.Context, actor *domain.Principal, input *communitydto.UpdateVolunteerStatusInput) (*domain.Volunteer, error) {
	if err := authorize(actor, domain.CommunityRoles); err != nil {
		return nil, err
	}
	input.Status = strings.ToUpper(strings.TrimSpace(input.Status))
	if err := validateInput(input); err != nil {
		return nil, err
	}
	v, err := uc.volunteerRepo.UpdateVolunteerStatus(ctx, input.VolunteerID, input.Status)
	if err != nil {
		return nil, err
	}
	uc.effects.commit(ctx, actor, auditEntry{
		action:     domain.AuditVolunteerStatusUpdated,
		targetType: domain.TargetTypeVolunteer,
		targetID:   v.ID,
		meta:       map[string]any{"status": v.Status},
	}, "/admin/volunteers")
	return v, nil
}
