package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
)

func ToDomainComment(m *models.CommentModel) *domain.Comment {
	c := &domain.Comment{
		ID:        m.ID,
		UserID:    m.UserID,
		Target:    domain.CommentTarget{Kind: m.RefType, ID: m.RefID},
		Body:      m.Body,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.User != nil {
		c.AuthorName = m.User.Name
	}
	return c
}

func ToGORMComment(c *domain.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID,
		UserID:    c.UserID,
		RefType:   c.Target.Kind,
		RefID:     c.Target.ID,
		Body:      c.Body,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
