package domain

import (
	"context"
	"time"
)

type NewsletterSubscriber struct {
	ID        string
	Email     string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewsletterRepository interface {
	// UpsertSubscriber is keyed by email.
	UpsertSubscriber(ctx context.Context, sub *NewsletterSubscriber) error
	ListSubscribers(ctx context.Context) ([]*NewsletterSubscriber, error)
	CountSubscribersSince(ctx context.Context, since time.Time) (int64, error)
}

type Volunteer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Skills    string
	Notes     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const VolunteerStatusNew = "NEW"

type VolunteerRepository interface {
	CreateVolunteer(ctx context.Context, v *Volunteer) error
	ListVolunteers(ctx context.Context) ([]*Volunteer, error)
	UpdateVolunteerStatus(ctx context.Context, id, status string) (*Volunteer, error)
	CountVolunteersSince(ctx context.Context, since time.Time) (int64, error)
}
