package domain

import (
	"context"
	"time"
)

type ArticleStatus string

const (
	ArticleDraft     ArticleStatus = "DRAFT"
	ArticlePublished ArticleStatus = "PUBLISHED"
)

type Category struct {
	ID   string
	Name string
	Slug string
}

type Article struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     string
	Body        string
	CoverURL    string
	Status      ArticleStatus
	PublishedAt *time.Time
	AuthorID    string
	AuthorName  string
	Categories  []*Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ArticleFilter struct {
	Query    string
	Category string
	Status   ArticleStatus
	Page     int
	PageSize int
}

type ArticleRepository interface {
	ListArticles(ctx context.Context, filter ArticleFilter) ([]*Article, int64, error)
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)
	GetArticleByID(ctx context.Context, id string) (*Article, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	CountCategories(ctx context.Context, ids []string) (int64, error)
	// UpsertArticle saves the article and replaces its category links in one
	// transaction.
	UpsertArticle(ctx context.Context, article *Article, categoryIDs []string) error
	DeleteArticle(ctx context.Context, id string) error
	CountArticles(ctx context.Context, status ArticleStatus) (int64, error)
}

type MatchStatus string

const (
	MatchScheduled MatchStatus = "SCHEDULED"
	MatchLive      MatchStatus = "LIVE"
	MatchFinished  MatchStatus = "FINISHED"
	MatchPostponed MatchStatus = "POSTPONED"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchScheduled, MatchLive, MatchFinished, MatchPostponed:
		return true
	}
	return false
}

type Match struct {
	ID            string
	Opponent      string
	EventDate     time.Time
	Venue         string
	Competition   string
	Status        MatchStatus
	ScoreHome     *int
	ScoreAway     *int
	HighlightText string
	HighlightURL  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MatchFilter struct {
	Statuses    []MatchStatus
	Competition string
	From        *time.Time
	Ascending   bool
	Page        int
	PageSize    int
}

type MatchRepository interface {
	ListMatches(ctx context.Context, filter MatchFilter) ([]*Match, int64, error)
	GetMatch(ctx context.Context, id string) (*Match, error)
	UpsertMatch(ctx context.Context, match *Match) error
	DeleteMatch(ctx context.Context, id string) error
}

type Page struct {
	ID          string
	Title       string
	Slug        string
	Body        string
	Status      ArticleStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PageRepository interface {
	ListPages(ctx context.Context) ([]*Page, error)
	GetPageByID(ctx context.Context, id string) (*Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*Page, error)
	UpsertPage(ctx context.Context, page *Page) error
	DeletePage(ctx context.Context, id string) error
}

type Media struct {
	ID        string
	URL       string
	Type      string
	Width     *int
	Height    *int
	Alt       string
	CreatedBy string
	CreatedAt time.Time
}

type MediaFilter struct {
	Query    string
	Page     int
	PageSize int
}

type MediaRepository interface {
	ListMedia(ctx context.Context, filter MediaFilter) ([]*Media, int64, error)
	CreateMedia(ctx context.Context, media *Media) error
	DeleteMedia(ctx context.Context, id string) error
}
