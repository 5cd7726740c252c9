package models

import (
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string
	BasePrice   int64                `gorm:"not null"`
	Status      domain.ProductStatus `gorm:"type:varchar(16);index;not null"`
	CoverURL    string
	Variants    []ProductVariantModel `gorm:"foreignKey:ProductID;references:ID"`
	CreatedAt   time.Time             `gorm:"index"`
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is soft-deleted so order lines keep resolving after a
// variant is removed from the catalog.
type ProductVariantModel struct {
	ID        string                                `gorm:"primaryKey;type:uuid"`
	ProductID string                                `gorm:"type:uuid;index;not null"`
	SKU       string                                `gorm:"uniqueIndex;not null"`
	Options   datatypes.JSONType[map[string]string] `gorm:"column:option_json"`
	Stock     int                                   `gorm:"not null;check:stock >= 0"`
	Price     int64                                 `gorm:"not null"`
	Product   *ProductModel                         `gorm:"foreignKey:ProductID;references:ID"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProductVariantModel) TableName() string {
	return "product_variants"
}
