package migrations

import (
	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProductRow{},
		&models.CategoryRow{},
		&models.ThemeRow{},
		&models.StoryRow{},
		&models.BannerRow{},
		&models.OrderRow{},
		&models.OrderItemRow{},
		&models.LandingSettingsRow{},
	)
}
