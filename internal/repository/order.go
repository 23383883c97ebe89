package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
)

type orderRepository struct {
	db *gorm.DB
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *orderRepository) Find(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.RestaurantIDs != nil {
		if len(filter.RestaurantIDs) == 0 {
			return []models.Order{}, nil
		}
		query = query.Where("restaurant_id IN ?", filter.RestaurantIDs)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var orders []models.Order
	err := query.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, translate(err)
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func (r *orderItemRepository) FindByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, translate(err)
}

func (r *orderItemRepository) Create(ctx context.Context, item *models.OrderItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}
