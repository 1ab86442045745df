package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type BannerRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.BannerRow, error)
	GetByID(ctx context.Context, id string) (*models.BannerRow, error)
	Create(ctx context.Context, row *models.BannerRow) error
	Update(ctx context.Context, row *models.BannerRow) error
	Delete(ctx context.Context, id string) error
	UpdateSortOrders(ctx context.Context, orderedIDs []string) error
}

type bannerRepository struct {
	db *gorm.DB
}

func NewBannerRepository(db *gorm.DB) BannerRepositoryImpl {
	return &bannerRepository{db}
}

func (b *bannerRepository) GetAll(ctx context.Context) ([]models.BannerRow, error) {
	var rows []models.BannerRow
	if err := b.db.WithContext(ctx).Order("sort_order ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (b *bannerRepository) GetByID(ctx context.Context, id string) (*models.BannerRow, error) {
	var row models.BannerRow
	if err := b.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (b *bannerRepository) Create(ctx context.Context, row *models.BannerRow) error {
	return b.db.WithContext(ctx).Create(row).Error
}

func (b *bannerRepository) Update(ctx context.Context, row *models.BannerRow) error {
	return b.db.WithContext(ctx).Save(row).Error
}

func (b *bannerRepository) Delete(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BannerRow{}).Error
}

func (b *bannerRepository) UpdateSortOrders(ctx context.Context, orderedIDs []string) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.BannerRow{}).Where("id = ?", id).Update("sort_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
