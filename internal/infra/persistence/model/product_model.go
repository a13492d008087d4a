// Package model contains the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string           `gorm:"size:200;not null;index"`
	Code             string           `gorm:"size:64;not null;uniqueIndex"`
	Quantity         int              `gorm:"not null;default:0;check:quantity >= 0"`
	CriticalQuantity int              `gorm:"not null;default:0"`
	Price            float64          `gorm:"type:decimal(12,2);not null;default:0;check:price >= 0"`
	PhotoURL         string           `gorm:"size:1024"`
	Description      string           `gorm:"type:text"`
	Categories       []*CategoryModel `gorm:"many2many:product_categories"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"size:200;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductCategoryModel is the join row between products and categories. The
// composite primary key keeps the pair unique.
type ProductCategoryModel struct {
	ProductModelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return "product_categories"
}
