package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
)

type restaurantRepository struct {
	db *gorm.DB
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, translate(err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) FindAndCount(ctx context.Context, filter RestaurantFilter, w pagination.Window) ([]models.Restaurant, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Restaurant{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.NameContains != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(filter.NameContains))+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	var restaurants []models.Restaurant
	if err := query.Scopes(w.Scope()).Order("id").Find(&restaurants).Error; err != nil {
		return nil, 0, translate(err)
	}
	return restaurants, total, nil
}

func (r *restaurantRepository) FindIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Restaurant{}).Where("owner_id = ?", ownerID).Pluck("id", &ids).Error
	return ids, translate(err)
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return translate(r.db.WithContext(ctx).Create(restaurant).Error)
}

func (r *restaurantRepository) Save(ctx context.Context, restaurant *models.Restaurant) error {
	return translate(r.db.WithContext(ctx).Save(restaurant).Error)
}

func (r *restaurantRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteRestaurant(tx, id)
	}))
}

// deleteRestaurant removes a restaurant with its dishes and detaches its
// orders. It must run inside a transaction.
func deleteRestaurant(tx *gorm.DB, id uint) error {
	var dishIDs []uint
	if err := tx.Model(&models.Dish{}).Where("restaurant_id = ?", id).Pluck("id", &dishIDs).Error; err != nil {
		return err
	}
	if len(dishIDs) > 0 {
		if err := tx.Model(&models.OrderItem{}).Where("dish_id IN ?", dishIDs).Update("dish_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("restaurant_id = ?", id).Delete(&models.Dish{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Model(&models.Order{}).Where("restaurant_id = ?", id).Update("restaurant_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Restaurant{}, id).Error
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
