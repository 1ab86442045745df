package repositories

import (
	"context"
	"strings"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type ProductRepositoryImpl interface {
	GetProducts(ctx context.Context) ([]models.ProductRow, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]models.ProductRow, int64, error)
	GetByCategoryPaginated(ctx context.Context, category string, limit, offset int) ([]models.ProductRow, int64, error)
	SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ProductRow, int64, error)
	GetFeatured(ctx context.Context, limit int) ([]models.ProductRow, error)
	GetByID(ctx context.Context, id string) (*models.ProductRow, error)
	Create(ctx context.Context, row *models.ProductRow) error
	Update(ctx context.Context, row *models.ProductRow) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) GetProducts(ctx context.Context) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	if err := p.db.WithContext(ctx).Model(&models.ProductRow{}).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *productRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.ProductRow, int64, error) {
	var rows []models.ProductRow
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.ProductRow{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error

	return rows, total, err
}

func (p *productRepository) GetByCategoryPaginated(ctx context.Context, category string, limit, offset int) ([]models.ProductRow, int64, error) {
	var rows []models.ProductRow
	var total int64

	if err := p.db.WithContext(ctx).
		Model(&models.ProductRow{}).
		Where("category = ?", category).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error

	return rows, total, err
}

func (p *productRepository) SearchPaginated(ctx context.Context, keyword string, limit, offset int) ([]models.ProductRow, int64, error) {
	var rows []models.ProductRow
	var total int64
	searchKeyword := "%" + strings.ToLower(keyword) + "%"

	if err := p.db.WithContext(ctx).
		Model(&models.ProductRow{}).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchKeyword, searchKeyword).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error

	return rows, total, err
}

func (p *productRepository) GetFeatured(ctx context.Context, limit int) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	err := p.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.ProductRow, error) {
	var row models.ProductRow
	if err := p.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (p *productRepository) Create(ctx context.Context, row *models.ProductRow) error {
	return p.db.WithContext(ctx).Create(row).Error
}

func (p *productRepository) Update(ctx context.Context, row *models.ProductRow) error {
	return p.db.WithContext(ctx).Save(row).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductRow{}).Error
}
