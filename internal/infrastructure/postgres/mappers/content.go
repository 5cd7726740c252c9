package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
)

func ToDomainCategory(m *models.CategoryModel) *domain.Category {
	return &domain.Category{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func ToDomainArticle(m *models.ArticleModel) *domain.Article {
	a := &domain.Article{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Body:        m.Body,
		CoverURL:    m.CoverURL,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
		AuthorID:    m.AuthorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Author != nil {
		a.AuthorName = m.Author.Name
	}
	for i := range m.Categories {
		a.Categories = append(a.Categories, ToDomainCategory(&m.Categories[i]))
	}
	return a
}

func ToGORMArticle(a *domain.Article) *models.ArticleModel {
	return &models.ArticleModel{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Body:        a.Body,
		CoverURL:    a.CoverURL,
		Status:      a.Status,
		PublishedAt: a.PublishedAt,
		AuthorID:    a.AuthorID,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func ToDomainMatch(m *models.MatchModel) *domain.Match {
	return &domain.Match{
		ID:            m.ID,
		Opponent:      m.Opponent,
		EventDate:     m.EventDate,
		Venue:         m.Venue,
		Competition:   m.Competition,
		Status:        m.Status,
		ScoreHome:     m.ScoreHome,
		ScoreAway:     m.ScoreAway,
		HighlightText: m.HighlightText,
		HighlightURL:  m.HighlightURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToGORMMatch(m *domain.Match) *models.MatchModel {
	return &models.MatchModel{
		ID:            m.ID,
		Opponent:      m.Opponent,
		EventDate:     m.EventDate,
		Venue:         m.Venue,
		Competition:   m.Competition,
		Status:        m.Status,
		ScoreHome:     m.ScoreHome,
		ScoreAway:     m.ScoreAway,
		HighlightText: m.HighlightText,
		HighlightURL:  m.HighlightURL,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToDomainPage(m *models.PageModel) *domain.Page {
	return &domain.Page{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Body:        m.Body,
		Status:      m.Status,
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToGORMPage(p *domain.Page) *models.PageModel {
	return &models.PageModel{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Status:      p.Status,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToDomainMedia(m *models.MediaModel) *domain.Media {
	return &domain.Media{
		ID:        m.ID,
		URL:       m.URL,
		Type:      m.Type,
		Width:     m.Width,
		Height:    m.Height,
		Alt:       m.Alt,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}

func ToGORMMedia(m *domain.Media) *models.MediaModel {
	return &models.MediaModel{
		ID:        m.ID,
		URL:       m.URL,
		Type:      m.Type,
		Width:     m.Width,
		Height:    m.Height,
		Alt:       m.Alt,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
