package repository

import (
	"context"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/mappers"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func orderedVariants(db *gorm.DB) *gorm.DB {
	return db.Order("product_variants.price ASC, product_variants.sku ASC")
}

func (r *DefaultCatalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.ProductModel{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		if filter.MatchSKU {
			query = query.Where(
				"name ILIKE ? OR description ILIKE ? OR id IN (?)",
				like, like,
				r.DB.Model(&models.ProductVariantModel{}).Select("product_id").Where("sku ILIKE ?", like),
			)
		} else {
			query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		query = query.Offset(pageOffset(filter.Page, filter.PageSize)).Limit(filter.PageSize)
	}

	var productModels []models.ProductModel
	if err := query.Preload("Variants", orderedVariants).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*domain.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, mappers.ToDomainProduct(&productModels[i]))
	}
	return products, total, nil
}

func (r *DefaultCatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	var product models.ProductModel
	if err := r.DB.WithContext(ctx).
		Preload("Variants", orderedVariants).
		First(&product, "slug = ?", slug).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainProduct(&product), nil
}

func (r *DefaultCatalogRepository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	if !validID(productID) {
		return nil, domain.ErrNotFound
	}
	var product models.ProductModel
	if err := r.DB.WithContext(ctx).
		Preload("Variants", orderedVariants).
		First(&product, "id = ?", productID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainProduct(&product), nil
}

func (r *DefaultCatalogRepository) GetVariantByID(ctx context.Context, variantID string) (*domain.ProductVariant, error) {
	if !validID(variantID) {
		return nil, domain.ErrNotFound
	}
	var variant models.ProductVariantModel
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		First(&variant, "id = ?", variantID).Error; err != nil {
		return nil, mapErr(err)
	}
	return mappers.ToDomainVariant(&variant), nil
}

func (r *DefaultCatalogRepository) UpsertProduct(ctx context.Context, product *domain.Product) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if product.ID == "" {
			product.ID = uuid.New().String()
		} else if !validID(product.ID) {
			return domain.ErrNotFound
		}
		if err := tx.Omit("Variants").Save(mappers.ToGORMProduct(product)).Error; err != nil {
			return err
		}

		keep := make([]string, 0, len(product.Variants))
		for _, v := range product.Variants {
			if v.ID != "" {
				keep = append(keep, v.ID)
			}
		}

		stale := tx.Where("product_id = ?", product.ID)
		if len(keep) > 0 {
			stale = stale.Where("id NOT IN ?", keep)
		}
		if err := stale.Delete(&models.ProductVariantModel{}).Error; err != nil {
			return err
		}

		for _, v := range product.Variants {
			v.ProductID = product.ID
			if v.ID == "" {
				v.ID = uuid.New().String()
				if err := tx.Create(mappers.ToGORMVariant(v)).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Model(&models.ProductVariantModel{}).
				Where("id = ? AND product_id = ?", v.ID, product.ID).
				Updates(map[string]any{
					"sku":         v.SKU,
					"option_json": mappers.ToGORMVariant(v).Options,
					"stock":       v.Stock,
					"price":       v.Price,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultCatalogRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.ProductModel{}).Count(&count).Error
	return count, err
}

func (r *DefaultCatalogRepository) ListLowStockVariants(ctx context.Context, threshold, limit int) ([]*domain.ProductVariant, error) {
	var variantModels []models.ProductVariantModel
	if err := r.DB.WithContext(ctx).
		Preload("Product").
		Where("stock <= ?", threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&variantModels).Error; err != nil {
		return nil, err
	}

	variants := make([]*domain.ProductVariant, 0, len(variantModels))
	for i := range variantModels {
		variants = append(variants, mappers.ToDomainVariant(&variantModels[i]))
	}
	return variants, nil
}
