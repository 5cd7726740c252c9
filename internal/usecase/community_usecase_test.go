package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	communitydto "github.com/brigatacurvasud/bcs-service/internal/usecase/dto/community"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNewsletterRepo struct {
	subs []*domain.NewsletterSubscriber
}

func (r *memNewsletterRepo) UpsertSubscriber(_ context.Context, sub *domain.NewsletterSubscriber) error {
	for _, s := range r.subs {
		if s.Email == sub.Email {
			*sub = *s
			return nil
		}
	}
	sub.ID = "sub-" + sub.Email
	sub.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	cp := *sub
	r.subs = append(r.subs, &cp)
	return nil
}

func (r *memNewsletterRepo) ListSubscribers(context.Context) ([]*domain.NewsletterSubscriber, error) {
	return r.subs, nil
}

func (r *memNewsletterRepo) CountSubscribersSince(context.Context, time.Time) (int64, error) {
	return int64(len(r.subs)), nil
}

type memVolunteerRepo struct {
	volunteers map[string]*domain.Volunteer
}

func (r *memVolunteerRepo) CreateVolunteer(_ context.Context, v *domain.Volunteer) error {
	r.volunteers[v.ID] = v
	return nil
}

func (r *memVolunteerRepo) ListVolunteers(context.Context) ([]*domain.Volunteer, error) {
	out := make([]*domain.Volunteer, 0, len(r.volunteers))
	for _, v := range r.volunteers {
		out = append(out, v)
	}
	return out, nil
}

func (r *memVolunteerRepo) UpdateVolunteerStatus(_ context.Context, id, status string) (*domain.Volunteer, error) {
	v, ok := r.volunteers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	v.Status = status
	return v, nil
}

func (r *memVolunteerRepo) CountVolunteersSince(context.Context, time.Time) (int64, error) {
	return int64(len(r.volunteers)), nil
}

func newCommunityFixture() (*memNewsletterRepo, *DefaultCommunityUsecase, *recordingAudit) {
	news := &memNewsletterRepo{}
	audit := &recordingAudit{}
	uc := NewDefaultCommunityUsecase(news, &memVolunteerRepo{volunteers: map[string]*domain.Volunteer{}}, AdminEffects{Audit: audit})
	return news, uc, audit
}

func TestSubscribe_UpsertsByEmail(t *testing.T) {
	news, uc, _ := newCommunityFixture()
	ctx := context.Background()

	first, err := uc.Subscribe(ctx, &communitydto.SubscribeInput{Email: "Ultra@Example.com "})
	require.NoError(t, err)
	second, err := uc.Subscribe(ctx, &communitydto.SubscribeInput{Email: "ultra@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, news.subs, 1)

	_, err = uc.Subscribe(ctx, &communitydto.SubscribeInput{Email: "not-an-email"})
	require.True(t, domain.IsValidation(err))
}

func TestExportSubscribers_CSV(t *testing.T) {
	news, uc, _ := newCommunityFixture()
	ctx := context.Background()
	news.subs = []*domain.NewsletterSubscriber{
		{Email: "a@example.com", Verified: true, CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		{Email: "b@example.com", CreatedAt: time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)},
	}

	var buf bytes.Buffer
	require.ErrorIs(t, uc.ExportSubscribers(ctx, staff(domain.RoleFinance), &buf), domain.ErrForbidden)
	assert.Zero(t, buf.Len())

	require.NoError(t, uc.ExportSubscribers(ctx, staff(domain.RoleModerator), &buf))
	assert.Equal(t,
		"email,verified,created_at\n"+
			"a@example.com,yes,2024-01-02T03:04:05.000Z\n"+
			"b@example.com,no,2024-02-03T04:05:06.000Z\n",
		buf.String())
}

func TestVolunteer_SubmitAndModerate(t *testing.T) {
	_, uc, audit := newCommunityFixture()
	ctx := context.Background()

	v, err := uc.SubmitVolunteer(ctx, &communitydto.VolunteerInput{Name: "Dimas", Email: "dimas@example.com", Skills: "design"})
	require.NoError(t, err)
	assert.Equal(t, domain.VolunteerStatusNew, v.Status)

	updated, err := uc.UpdateVolunteerStatus(ctx, staff(domain.RoleContentAdmin), &communitydto.UpdateVolunteerStatusInput{VolunteerID: v.ID, Status: "contacted"})
	require.NoError(t, err)
	assert.Equal(t, "CONTACTED", updated.Status)
	assert.Equal(t, []string{domain.AuditVolunteerStatusUpdated}, audit.actions())

	_, err = uc.SubmitVolunteer(ctx, &communitydto.VolunteerInput{Name: "D", Email: "dimas@example.com"})
	require.True(t, domain.IsValidation(err))
}
