package repositories

import (
	"context"

	"github.com/srikanth99-bot/looom-shop/app/models"
	"gorm.io/gorm"
)

type OrderRepositoryImpl interface {
	GetAllOrders(ctx context.Context) ([]models.OrderRow, error)
	GetByID(ctx context.Context, id string) (*models.OrderRow, error)
	Create(ctx context.Context, row *models.OrderRow) error
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus, historyJSON string) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (o *orderRepository) GetAllOrders(ctx context.Context) ([]models.OrderRow, error) {
	var rows []models.OrderRow
	err := o.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (o *orderRepository) GetByID(ctx context.Context, id string) (*models.OrderRow, error) {
	var row models.OrderRow
	if err := o.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create writes the order and its line items in one transaction.
func (o *orderRepository) Create(ctx context.Context, row *models.OrderRow) error {
	return o.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	})
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus, historyJSON string) error {
	return o.db.WithContext(ctx).
		Model(&models.OrderRow{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         string(status),
			"status_history": historyJSON,
		}).Error
}
