package models

import (
	"time"

	"gorm.io/gorm"
)

// ThemePalette is the color set a theme applies to the storefront.
type ThemePalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Theme carries a palette plus a bag of feature toggles. At most one theme
// should be the default; the store keeps that best-effort, the data layer
// does not enforce it.
type Theme struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Palette     ThemePalette    `json:"palette"`
	IsActive    bool            `json:"isActive"`
	IsDefault   bool            `json:"isDefault"`
	Settings    map[string]bool `json:"settings"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ThemeRow struct {
	ID              string `gorm:"size:64;not null;uniqueIndex;primary_key"`
	Name            string `gorm:"size:100;not null"`
	Slug            string `gorm:"size:100;not null;uniqueIndex"`
	Description     string `gorm:"type:text"`
	PrimaryColor    string `gorm:"size:32"`
	SecondaryColor  string `gorm:"size:32"`
	AccentColor     string `gorm:"size:32"`
	BackgroundColor string `gorm:"size:32"`
	TextColor       string `gorm:"size:32"`
	IsActive        bool   `gorm:"default:true"`
	IsDefault       bool   `gorm:"default:false"`
	Settings        string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (ThemeRow) TableName() string { return "themes" }
