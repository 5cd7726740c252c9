package contentdto

import "time"

type ListArticlesInput struct {
	Query    string
	Category string
	Status   string
	Page     int
	PageSize int
}

type UpsertArticleInput struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"min=4"`
	Slug        string     `json:"slug" validate:"min=3"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body" validate:"min=20"`
	CoverURL    string     `json:"coverUrl" validate:"omitempty,url"`
	Categories  []string   `json:"categories"`
	Status      string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type ListMatchesInput struct {
	Status      string
	Competition string
}

type UpsertMatchInput struct {
	ID            string    `json:"id"`
	Opponent      string    `json:"opponent" validate:"min=2"`
	EventDate     time.Time `json:"eventDate" validate:"required"`
	Venue         string    `json:"venue" validate:"min=2"`
	Competition   string    `json:"competition" validate:"min=2"`
	Status        string    `json:"status" validate:"omitempty,oneof=SCHEDULED LIVE FINISHED POSTPONED"`
	ScoreHome     *int      `json:"scoreHome"`
	ScoreAway     *int      `json:"scoreAway"`
	HighlightText string    `json:"highlightText" validate:"max=240"`
	HighlightURL  string    `json:"highlightUrl" validate:"omitempty,url"`
}

type UpsertPageInput struct {
	ID          string     `json:"id"`
	Title       string     `json:"title" validate:"min=3"`
	Slug        string     `json:"slug" validate:"min=2,slug"`
	Body        string     `json:"body" validate:"min=10"`
	Status      string     `json:"status" validate:"oneof=DRAFT PUBLISHED"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type ListMediaInput struct {
	Query    string
	Page     int
	PageSize int
}

type CreateMediaInput struct {
	URL      string `json:"url" validate:"required,url"`
	Type     string `json:"type" validate:"oneof=image video"`
	Width    *int   `json:"width" validate:"omitempty,gt=0"`
	Height   *int   `json:"height" validate:"omitempty,gt=0"`
	Alt      string `json:"alt" validate:"max=160"`
	ClientIP string `json:"-"`
}
