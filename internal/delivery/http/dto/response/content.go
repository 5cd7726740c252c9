package response

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ArticleResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Excerpt     string              `json:"excerpt,omitempty"`
	Body        string              `json:"body"`
	CoverURL    string              `json:"coverUrl,omitempty"`
	Status      string              `json:"status"`
	PublishedAt *time.Time          `json:"publishedAt"`
	AuthorID    string              `json:"authorId"`
	AuthorName  string              `json:"authorName,omitempty"`
	Categories  []*CategoryResponse `json:"categories"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type MatchResponse struct {
	ID            string    `json:"id"`
	Opponent      string    `json:"opponent"`
	EventDate     time.Time `json:"eventDate"`
	Venue         string    `json:"venue"`
	Competition   string    `json:"competition"`
	Status        string    `json:"status"`
	ScoreHome     *int      `json:"scoreHome"`
	ScoreAway     *int      `json:"scoreAway"`
	HighlightText string    `json:"highlightText,omitempty"`
	HighlightURL  string    `json:"highlightUrl,omitempty"`
}

type PageResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Body        string     `json:"body"`
	Status      string     `json:"status"`
	PublishedAt *time.Time `json:"publishedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type MediaResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	Width     *int      `json:"width"`
	Height    *int      `json:"height"`
	Alt       string    `json:"alt,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCategories(categories []*domain.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug})
	}
	return out
}

func NewArticle(a *domain.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Body:        a.Body,
		CoverURL:    a.CoverURL,
		Status:      string(a.Status),
		PublishedAt: a.PublishedAt,
		AuthorID:    a.AuthorID,
		AuthorName:  a.AuthorName,
		Categories:  NewCategories(a.Categories),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewArticles(articles []*domain.Article) []*ArticleResponse {
	out := make([]*ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, NewArticle(a))
	}
	return out
}

func NewMatch(m *domain.Match) *MatchResponse {
	return &MatchResponse{
		ID:            m.ID,
		Opponent:      m.Opponent,
		EventDate:     m.EventDate,
		Venue:         m.Venue,
		Competition:   m.Competition,
		Status:        string(m.Status),
		ScoreHome:     m.ScoreHome,
		ScoreAway:     m.ScoreAway,
		HighlightText: m.HighlightText,
		HighlightURL:  m.HighlightURL,
	}
}

func NewMatches(matches []*domain.Match) []*MatchResponse {
	out := make([]*MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewMatch(m))
	}
	return out
}

func NewPage(p *domain.Page) *PageResponse {
	return &PageResponse{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Body:        p.Body,
		Status:      string(p.Status),
		PublishedAt: p.PublishedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func NewPages(pages []*domain.Page) []*PageResponse {
	out := make([]*PageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, NewPage(p))
	}
	return out
}

func NewMedia(m *domain.Media) *MediaResponse {
	return &MediaResponse{
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

func NewMediaList(items []*domain.Media) []*MediaResponse {
	out := make([]*MediaResponse, 0, len(items))
	for _, m := range items {
		out = append(out, NewMedia(m))
	}
	return out
}
