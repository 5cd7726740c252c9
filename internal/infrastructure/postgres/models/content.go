package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
)

type CategoryModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"not null"`
	Slug string `gorm:"uniqueIndex;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type ArticleModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Title       string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Excerpt     string
	Body        string `gorm:"not null"`
	CoverURL    string
	Status      domain.ArticleStatus `gorm:"type:varchar(16);index;not null"`
	PublishedAt *time.Time           `gorm:"index"`
	AuthorID    string               `gorm:"type:uuid;index;not null"`
	Author      *UserModel           `gorm:"foreignKey:AuthorID;references:ID"`
	Categories  []CategoryModel      `gorm:"many2many:article_categories;joinForeignKey:ArticleID;joinReferences:CategoryID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ArticleModel) TableName() string {
	return "articles"
}

type MatchModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	Opponent      string    `gorm:"not null"`
	EventDate     time.Time `gorm:"index;not null"`
	Venue         string
	Competition   string             `gorm:"index"`
	Status        domain.MatchStatus `gorm:"type:varchar(16);index;not null"`
	ScoreHome     *int
	ScoreAway     *int
	HighlightText string
	HighlightURL  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MatchModel) TableName() string {
	return "matches"
}

type PageModel struct {
	ID          string               `gorm:"primaryKey;type:uuid"`
	Title       string               `gorm:"not null"`
	Slug        string               `gorm:"uniqueIndex;not null"`
	Body        string               `gorm:"not null"`
	Status      domain.ArticleStatus `gorm:"type:varchar(16);not null"`
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PageModel) TableName() string {
	return "pages"
}

type MediaModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	URL       string `gorm:"not null"`
	Type      string `gorm:"not null"`
	Width     *int
	Height    *int
	Alt       string
	CreatedBy string    `gorm:"type:uuid;index"`
	CreatedAt time.Time `gorm:"index"`
}

func (MediaModel) TableName() string {
	return "media"
}
