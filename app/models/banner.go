package models

import (
	"time"

	"gorm.io/gorm"
)

// Banner is the richer cousin of Story: same link and scheduling semantics
// plus presentation fields for the hero strip.
type Banner struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image"`
	Gradient    string     `json:"gradient"`
	BannerType  string     `json:"bannerType"`
	Height      string     `json:"height"`
	Position    string     `json:"position"`
	ButtonText  string     `json:"buttonText,omitempty"`
	ButtonColor string     `json:"buttonColor,omitempty"`
	ShowIcon    bool       `json:"showIcon"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	LinkType    string     `json:"linkType"`
	LinkValue   string     `json:"linkValue,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type BannerRow struct {
	ID          string `gorm:"size:64;not null;uniqueIndex;primary_key"`
	Title       string `gorm:"size:255;not null"`
	Subtitle    string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	Image       string `gorm:"size:512"`
	Gradient    string `gorm:"size:64"`
	BannerType  string `gorm:"size:32;default:'hero'"`
	Height      string `gorm:"size:32"`
	Position    string `gorm:"size:32"`
	ButtonText  string `gorm:"size:100"`
	ButtonColor string `gorm:"size:32"`
	ShowIcon    bool   `gorm:"default:true"`
	IsActive    bool   `gorm:"default:true"`
	SortOrder   int    `gorm:"default:0;index"`
	LinkType    string `gorm:"size:20;default:'none'"`
	LinkValue   string `gorm:"size:512"`
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (BannerRow) TableName() string { return "banners" }
