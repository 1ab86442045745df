package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlaceholderImage is substituted on read whenever a product row carries no
// images, so the storefront always has something to render.
const PlaceholderImage = "/images/products/placeholder.jpg"

// Product is the storefront view of a catalog item. Prices are decimals,
// list-valued fields are real slices and InStock is derived from the row's
// stock count.
type Product struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	Price                   decimal.Decimal  `json:"price"`
	OriginalPrice           *decimal.Decimal `json:"originalPrice,omitempty"`
	Category                string           `json:"category"`
	Description             string           `json:"description"`
	Images                  []string         `json:"images"`
	Sizes                   []string         `json:"sizes"`
	Colors                  []string         `json:"colors"`
	Stock                   int              `json:"stock"`
	InStock                 bool             `json:"inStock"`
	Featured                bool             `json:"featured"`
	Rating                  float64          `json:"rating"`
	ReviewCount             int              `json:"reviewCount"`
	Tags                    []string         `json:"tags"`
	SupportsFeedingFriendly bool             `json:"supportsFeedingFriendly"`
	IsStitchedDress         bool             `json:"isStitchedDress"`
	CreatedAt               time.Time        `json:"createdAt"`
	UpdatedAt               time.Time        `json:"updatedAt"`
}

// ProductRow mirrors the products table. List-valued fields are stored as
// JSON-encoded text; the service layer owns the transform in both directions.
type ProductRow struct {
	ID                      string              `gorm:"size:64;not null;uniqueIndex;primary_key"`
	Name                    string              `gorm:"size:255;not null"`
	Price                   decimal.Decimal     `gorm:"type:decimal(16,2);not null"`
	OriginalPrice           decimal.NullDecimal `gorm:"type:decimal(16,2)"`
	Category                string              `gorm:"size:100;index"`
	Description             string              `gorm:"type:text"`
	Images                  string              `gorm:"type:text"`
	Sizes                   string              `gorm:"type:text"`
	Colors                  string              `gorm:"type:text"`
	Stock                   int                 `gorm:"not null;default:0"`
	Featured                bool                `gorm:"default:false;index"`
	Rating                  float64             `gorm:"type:decimal(3,2);default:0"`
	ReviewCount             int                 `gorm:"default:0"`
	Tags                    string              `gorm:"type:text"`
	SupportsFeedingFriendly bool                `gorm:"default:false"`
	IsStitchedDress         bool                `gorm:"default:false"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
	DeletedAt               gorm.DeletedAt `gorm:"index"`
}

func (ProductRow) TableName() string { return "products" }
