package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Location  int                  `gorm:"not null"`
	Users     []*UserModel         `gorm:"many2many:store_users"`
	Products  []*StoreProductModel `gorm:"foreignKey:StoreID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreUserModel is the join row between stores and users.
type StoreUserModel struct {
	StoreModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserModelID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (StoreUserModel) TableName() string {
	return "store_users"
}

// StoreProductModel links a product to a store and carries the quantity held
// at that store, independent of the global product quantity.
type StoreProductModel struct {
	StoreID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Quantity  int           `gorm:"not null;default:0;check:quantity >= 0"`
}

// TableName explicitly sets the table name for GORM.
func (StoreProductModel) TableName() string {
	return "store_products"
}
