package models

import (
	"time"

	"gorm.io/gorm"
)

// Link targets for stories and banners.
const (
	LinkTypeCategory   = "category"
	LinkTypeCollection = "collection"
	LinkTypeExternal   = "external"
	LinkTypeNone       = "none"
)

// ValidLinkType reports whether t is one of the known link targets.
func ValidLinkType(t string) bool {
	switch t {
	case LinkTypeCategory, LinkTypeCollection, LinkTypeExternal, LinkTypeNone:
		return true
	}
	return false
}

// Story is a promotional tile on the storefront. Gradient names a visual
// style, not a raw CSS value. SortOrder is a dense 1..n ranking, renumbered
// on every reorder.
type Story struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle,omitempty"`
	Image     string     `json:"image"`
	Gradient  string     `json:"gradient"`
	IsActive  bool       `json:"isActive"`
	SortOrder int        `json:"sortOrder"`
	LinkType  string     `json:"linkType"`
	LinkValue string     `json:"linkValue,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// LiveAt reports whether the story's optional date window covers t.
func (s Story) LiveAt(t time.Time) bool {
	if s.StartDate != nil && t.Before(*s.StartDate) {
		return false
	}
	if s.EndDate != nil && t.After(*s.EndDate) {
		return false
	}
	return true
}

type StoryRow struct {
	ID        string `gorm:"size:64;not null;uniqueIndex;primary_key"`
	Title     string `gorm:"size:255;not null"`
	Subtitle  string `gorm:"size:255"`
	Image     string `gorm:"size:512"`
	Gradient  string `gorm:"size:64"`
	IsActive  bool   `gorm:"default:true"`
	SortOrder int    `gorm:"default:0;index"`
	LinkType  string `gorm:"size:20;default:'none'"`
	LinkValue string `gorm:"size:512"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (StoryRow) TableName() string { return "stories" }
