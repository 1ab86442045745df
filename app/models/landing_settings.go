package models

import "time"

// LandingSettingsID is the fixed primary key of the singleton settings row.
const LandingSettingsID = "landing_page_config"

// LandingSettings holds site-wide copy plus the curated ID lists driving the
// best-selling / trending / popular sections of the landing page.
type LandingSettings struct {
	ID                    string    `json:"id"`
	SiteName              string    `json:"siteName"`
	HeroTitle             string    `json:"heroTitle"`
	HeroSubtitle          string    `json:"heroSubtitle"`
	BannerText            string    `json:"bannerText"`
	ShowBanner            bool      `json:"showBanner"`
	BestSellingProductIDs []string  `json:"bestSellingProductIds"`
	TrendingProductIDs    []string  `json:"trendingProductIds"`
	PopularCategoryIDs    []string  `json:"popularCategoryIds"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type LandingSettingsRow struct {
	ID                    string `gorm:"size:64;not null;uniqueIndex;primary_key"`
	SiteName              string `gorm:"size:100"`
	HeroTitle             string `gorm:"size:255"`
	HeroSubtitle          string `gorm:"size:255"`
	BannerText            string `gorm:"size:512"`
	ShowBanner            bool   `gorm:"default:false"`
	BestSellingProductIDs string `gorm:"type:text"`
	TrendingProductIDs    string `gorm:"type:text"`
	PopularCategoryIDs    string `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (LandingSettingsRow) TableName() string { return "landing_settings" }
