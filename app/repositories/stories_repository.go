package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type StoryRepositoryImpl interface {
	GetAll(ctx context.Context) ([]models.StoryRow, error)
	GetByID(ctx context.Context, id string) (*models.StoryRow, error)
	Create(ctx context.Context, row *models.StoryRow) error
	Update(ctx context.Context, row *models.StoryRow) error
	Delete(ctx context.Context, id string) error
	UpdateSortOrders(ctx context.Context, orderedIDs []string) error
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepositoryImpl {
	return &storyRepository{db}
}

func (s *storyRepository) GetAll(ctx context.Context) ([]models.StoryRow, error) {
	var rows []models.StoryRow
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *storyRepository) GetByID(ctx context.Context, id string) (*models.StoryRow, error) {
	var row models.StoryRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *storyRepository) Create(ctx context.Context, row *models.StoryRow) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *storyRepository) Update(ctx context.Context, row *models.StoryRow) error {
	return s.db.WithContext(ctx).Save(row).Error
}

func (s *storyRepository) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.StoryRow{}).Error
}

// UpdateSortOrders rewrites sort_order to the 1-based position of each id in
// the given list, all in one transaction.
func (s *storyRepository) UpdateSortOrders(ctx context.Context, orderedIDs []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.StoryRow{}).Where("id = ?", id).Update("sort_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
