package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type ThemeRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.ThemeRow, error)
	GetByID(ctx context.Context, id string) (*models.ThemeRow, error)
	Create(ctx context.Context, row *models.ThemeRow) error
	Update(ctx context.Context, row *models.ThemeRow) error
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) error
}

type themeRepository struct {
	db *gorm.DB
}

func NewThemeRepository(db *gorm.DB) ThemeRepositoryImpl {
	return &themeRepository{db}
}

func (t *themeRepository) GetAll(ctx context.Context) ([]models.ThemeRow, error) {
	var rows []models.ThemeRow
	if err := t.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *themeRepository) GetByID(ctx context.Context, id string) (*models.ThemeRow, error) {
	var row models.ThemeRow
	if err := t.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *themeRepository) Create(ctx context.Context, row *models.ThemeRow) error {
	return t.db.WithContext(ctx).Create(row).Error
}

func (t *themeRepository) Update(ctx context.Context, row *models.ThemeRow) error {
	return t.db.WithContext(ctx).Save(row).Error
}

func (t *themeRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ThemeRow{}).Error
}

// SetDefault clears every other default flag in the same transaction so at
// most one row ends up default.
func (t *themeRepository) SetDefault(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ThemeRow{}).Where("is_default = ?", true).Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ThemeRow{}).Where("id = ?", id).Update("is_default", true).Error
	})
}
