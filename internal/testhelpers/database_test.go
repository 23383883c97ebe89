package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/nubereats/backend/internal/models"
)

func TestNewTestDB(t *testing.T) {
	db := NewTestDB(t)
	assert.NotNil(t, db)

	owner := CreateUser(t, db, "owner@test.com", models.RoleOwner)
	assert.NotZero(t, owner.ID)
	assert.NotEmpty(t, owner.PasswordHash)

	category := CreateCategory(t, db, "Korean BBQ", "korean-bbq")
	restaurant := CreateRestaurant(t, db, owner, "Grill", &category.ID)
	dish := CreateDish(t, db, restaurant, "Bulgogi", 15, nil)

	var count int64
	db.Model(&models.Dish{}).Where("restaurant_id = ?", restaurant.ID).Count(&count)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, restaurant.ID, dish.RestaurantID)
}
