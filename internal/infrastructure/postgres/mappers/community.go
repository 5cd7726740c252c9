package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
)

func ToDomainSubscriber(m *models.NewsletterSubscriberModel) *domain.NewsletterSubscriber {
	return &domain.NewsletterSubscriber{
		ID:        m.ID,
		Email:     m.Email,
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGORMSubscriber(s *domain.NewsletterSubscriber) *models.NewsletterSubscriberModel {
	return &models.NewsletterSubscriberModel{
		ID:        s.ID,
		Email:     s.Email,
		Verified:  s.Verified,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToDomainVolunteer(m *models.VolunteerModel) *domain.Volunteer {
	return &domain.Volunteer{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Skills:    m.Skills,
		Notes:     m.Notes,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToGORMVolunteer(v *domain.Volunteer) *models.VolunteerModel {
	return &models.VolunteerModel{
		ID:        v.ID,
		Name:      v.Name,
		Email:     v.Email,
		Phone:     v.Phone,
		Skills:    v.Skills,
		Notes:     v.Notes,
		Status:    v.Status,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
