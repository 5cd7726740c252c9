package mappers

import (
	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/brigatacurvasud/bcs-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainProduct(m *models.ProductModel) *domain.Product {
	if m == nil {
		return nil
	}
	p := &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		BasePrice:   m.BasePrice,
		Status:      m.Status,
		CoverURL:    m.CoverURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for i := range m.Variants {
		p.Variants = append(p.Variants, ToDomainVariant(&m.Variants[i]))
	}
	return p
}

func ToGORMProduct(p *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		Status:      p.Status,
		CoverURL:    p.CoverURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToDomainVariant(m *models.ProductVariantModel) *domain.ProductVariant {
	if m == nil {
		return nil
	}
	v := &domain.ProductVariant{
		ID:        m.ID,
		ProductID: m.ProductID,
		SKU:       m.SKU,
		Options:   m.Options.Data(),
		Stock:     m.Stock,
		Price:     m.Price,
	}
	if m.Product != nil {
		v.Product = ToDomainProduct(m.Product)
	}
	return v
}

func ToGORMVariant(v *domain.ProductVariant) *models.ProductVariantModel {
	options := v.Options
	if options == nil {
		options = map[string]string{}
	}
	return &models.ProductVariantModel{
		ID:        v.ID,
		ProductID: v.ProductID,
		SKU:       v.SKU,
		Options:   datatypes.NewJSONType(options),
		Stock:     v.Stock,
		Price:     v.Price,
	}
}
