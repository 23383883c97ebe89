package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
)

type dishRepository struct {
	db *gorm.DB
}

func (r *dishRepository) FindByID(ctx context.Context, id uint) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		return nil, translate(err)
	}
	return &dish, nil
}

func (r *dishRepository) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.Dish, error) {
	var dishes []models.Dish
	err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("id").Find(&dishes).Error
	return dishes, translate(err)
}

func (r *dishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return translate(r.db.WithContext(ctx).Create(dish).Error)
}

func (r *dishRepository) Save(ctx context.Context, dish *models.Dish) error {
	return translate(r.db.WithContext(ctx).Save(dish).Error)
}

func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).Where("dish_id = ?", id).Update("dish_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Dish{}, id).Error
	}))
}
