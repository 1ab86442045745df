package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LandingSettingsRepositoryImpl interface {
	Get(ctx context.Context) (*models.LandingSettingsRow, error)
	Upsert(ctx context.Context, row *models.LandingSettingsRow) error
}

type landingSettingsRepository struct {
	db *gorm.DB
}

func NewLandingSettingsRepository(db *gorm.DB) LandingSettingsRepositoryImpl {
	return &landingSettingsRepository{db}
}

// Get fetches the singleton row keyed by the fixed config id.
func (l *landingSettingsRepository) Get(ctx context.Context) (*models.LandingSettingsRow, error) {
	var row models.LandingSettingsRow
	if err := l.db.WithContext(ctx).Where("id = ?", models.LandingSettingsID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (l *landingSettingsRepository) Upsert(ctx context.Context, row *models.LandingSettingsRow) error {
	row.ID = models.LandingSettingsID
	return l.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
