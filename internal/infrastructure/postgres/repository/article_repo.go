package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultArticleRepository struct {
	DB *gorm.DB
}

func NewDefaultArticleRepository(db *gorm.DB) *DefaultArticleRepository {
	return &DefaultArticleRepository{DB: db}
}

func (r *DefaultArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]*domain.Article, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.ArticleModel{})
	if filter.Status != "" {
		query = query.Where("articles.status = ?", filter.Status)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where("articles.title ILIKE ? OR articles.excerpt ILIKE ?", like, like)
	}
	if filter.Category != "" {
		query = query.Where(
			"articles.id IN (?)",
			r.DB.Table("article_categories").
				Select("article_categories.article_id").
				Joins("JOIN categories ON categories.id = article_categories.category_id").
				Where("categories.slug = ?", filter.Category),
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if filter.PageSize > 0 {
		query = query.Offset(pageOffset(filter.Page, filter.PageSize)).Limit(filter.PageSize)
	}

	var articleModels []models.ArticleModel
	if err := query.
		Preload("Author").
		Preload("Categories").
		Order("articles.published_at DESC NULLS LAST, articles.created_at DESC").
		Find(&articleModels).Error; err != nil {
		return nil, 0, err
	}
	articles := make([]*domain.Article, 0, len(articleModels))
	for i := range articleModels {
		articles = append(articles, mappers.ToDomainArticle(&articleModels[i]))
	}
	return articles, total, nil
}

func (r *DefaultArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return r.getArticle(ctx, "slug = ?", slug)
}

func (r *DefaultArticleRepository) GetArticleByID(ctx context.Context, id string) (*domain.Article, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return r.getArticle(ctx, "id = ?", id)
}

func (r *DefaultArticleRepository) getArticle(ctx context.Context, cond string, arg any) (*domain.Article, error) {
	var article models.ArticleModel
	if err := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Categories").
		First(&article, cond, arg).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainArticle(&article), nil
}

func (r *DefaultArticleRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, mappers.ToDomainCategory(&categoryModels[i]))
	}
	return categories, nil
}

func (r *DefaultArticleRepository) CountCategories(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.CategoryModel{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *DefaultArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article, categoryIDs []string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if article.ID == "" {
			article.ID = uuid.New().String()
		} else if !validID(article.ID) {
			return domain.ErrNotFound
		}
		m := mappers.ToGORMArticle(article)
		if err := tx.Omit("Categories", "Author").Save(m).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM article_categories WHERE article_id = ?", article.ID).Error; err != nil {
			return err
		}
		if len(categoryIDs) == 0 {
			return nil
		}
		links := make([]map[string]any, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			links = append(links, map[string]any{"article_id": article.ID, "category_id": id})
		}
		return tx.Table("article_categories").Create(links).Error
	})
}

func (r *DefaultArticleRepository) DeleteArticle(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM article_categories WHERE article_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.ArticleModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *DefaultArticleRepository) CountArticles(ctx context.Context, status domain.ArticleStatus) (int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.ArticleModel{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}
