package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCommentRepository struct {
	DB *gorm.DB
}

func NewDefaultCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{DB: db}
}

func (r *DefaultCommentRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	return r.DB.WithContext(ctx).Omit("User").Create(mappers.ToGORMComment(comment)).Error
}

func (r *DefaultCommentRepository) ListComments(ctx context.Context, filter domain.CommentFilter) ([]*domain.Comment, error) {
	if filter.Target != nil && !validID(filter.Target.ID) {
		return []*domain.Comment{}, nil
	}
	query := r.DB.WithContext(ctx).Preload("User")
	if filter.Target != nil {
		query = query.Where("ref_type = ? AND ref_id = ?", filter.Target.Kind, filter.Target.ID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var commentModels []models.CommentModel
	if err := query.Order("created_at DESC").Find(&commentModels).Error; err != nil {
		return nil, err
	}
	comments := make([]*domain.Comment, 0, len(commentModels))
	for i := range commentModels {
		comments = append(comments, mappers.ToDomainComment(&commentModels[i]))
	}
	return comments, nil
}

func (r *DefaultCommentRepository) UpdateCommentStatus(ctx context.Context, commentID string, status domain.CommentStatus) (*domain.Comment, error) {
	if !validID(commentID) {
		return nil, domain.ErrNotFound
	}
	db := r.DB.WithContext(ctx)
	res := db.Model(&models.CommentModel{}).Where("id = ?", commentID).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	var comment models.CommentModel
	if err := db.Preload("User").First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainComment(&comment), nil
}

func (r *DefaultCommentRepository) CountCommentsByStatus(ctx context.Context, status domain.CommentStatus) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.CommentModel{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// DefaultTargetResolver checks comment targets against the article and
// product tables.
type DefaultTargetResolver struct {
	DB *gorm.DB
}

func NewDefaultTargetResolver(db *gorm.DB) *DefaultTargetResolver {
	return &DefaultTargetResolver{DB: db}
}

func (r *DefaultTargetResolver) ArticleExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, &models.ArticleModel{}, id)
}

func (r *DefaultTargetResolver) ProductExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, &models.ProductModel{}, id)
}

func (r *DefaultTargetResolver) exists(ctx context.Context, model any, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}
	var count int64
	if err := r.DB.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
