package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.CategoryRow, error)
	GetByID(ctx context.Context, id string) (*models.CategoryRow, error)
	GetChildren(ctx context.Context, parentID string) ([]models.CategoryRow, error)
	Create(ctx context.Context, row *models.CategoryRow) error
	Update(ctx context.Context, row *models.CategoryRow) error
	Delete(ctx context.Context, id string) error
	RefreshProductCount(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db}
}

func (c *categoryRepository) GetAll(ctx context.Context) ([]models.CategoryRow, error) {
	var rows []models.CategoryRow
	if err := c.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *categoryRepository) GetByID(ctx context.Context, id string) (*models.CategoryRow, error) {
	var row models.CategoryRow
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (c *categoryRepository) GetChildren(ctx context.Context, parentID string) ([]models.CategoryRow, error) {
	var rows []models.CategoryRow
	err := c.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("sort_order ASC").Find(&rows).Error
	return rows, err
}

func (c *categoryRepository) Create(ctx context.Context, row *models.CategoryRow) error {
	return c.db.WithContext(ctx).Create(row).Error
}

func (c *categoryRepository) Update(ctx context.Context, row *models.CategoryRow) error {
	return c.db.WithContext(ctx).Save(row).Error
}

func (c *categoryRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CategoryRow{}).Error
}

// RefreshProductCount recomputes the denormalized count from the products
// table. Categories reference products by name, not foreign key, so this is
// called after product writes touch the category.
func (c *categoryRepository) RefreshProductCount(ctx context.Context, id string) error {
	var row models.CategoryRow
	if err := c.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return err
	}

	var count int64
	if err := c.db.WithContext(ctx).Model(&models.ProductRow{}).Where("category = ?", row.Name).Count(&count).Error; err != nil {
		return err
	}

	return c.db.WithContext(ctx).Model(&models.CategoryRow{}).Where("id = ?", id).Update("product_count", count).Error
}
