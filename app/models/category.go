package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxCategoryDepth is enforced by the admin handlers, not the data layer.
// Level 0 is a root category, level 1 a subcategory.
const MaxCategoryDepth = 2

type Category struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	AutoDescription string    `json:"autoDescription,omitempty"`
	Image           string    `json:"image"`
	Icon            string    `json:"icon"`
	Color           string    `json:"color"`
	IsActive        bool      `json:"isActive"`
	Level           int       `json:"level"`
	ParentID        *string   `json:"parentId,omitempty"`
	SortOrder       int       `json:"sortOrder"`
	ProductCount    int       `json:"productCount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CategoryRow struct {
	ID              string  `gorm:"size:64;not null;uniqueIndex;primary_key"`
	Name            string  `gorm:"size:100;not null"`
	Slug            string  `gorm:"size:100;not null;uniqueIndex"`
	Description     string  `gorm:"type:text"`
	AutoDescription string  `gorm:"type:text"`
	Image           string  `gorm:"size:512"`
	Icon            string  `gorm:"size:16"`
	Color           string  `gorm:"size:32"`
	IsActive        bool    `gorm:"default:true"`
	Level           int     `gorm:"default:0"`
	ParentID        *string `gorm:"size:64;index"`
	SortOrder       int     `gorm:"default:0"`
	ProductCount    int     `gorm:"default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (CategoryRow) TableName() string { return "categories" }
