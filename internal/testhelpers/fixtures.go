package testhelpers

import (
	"testing"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
)

// TestPassword is the raw password given to every user created by CreateUser.
const TestPassword = "password123"

func CreateUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: TestPassword, Role: role}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func CreateRestaurant(t *testing.T, db *gorm.DB, owner *models.User, name string, categoryID *uint) *models.Restaurant {
	t.Helper()
	r := &models.Restaurant{
		Name:       name,
		Address:    "123 Main St",
		CoverImage: "https://example.com/cover.png",
		OwnerID:    owner.ID,
		CategoryID: categoryID,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to create restaurant %s: %v", name, err)
	}
	return r
}

func CreateCategory(t *testing.T, db *gorm.DB, name, slug string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Slug: slug}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("failed to create category %s: %v", name, err)
	}
	return c
}

func CreateDish(t *testing.T, db *gorm.DB, restaurant *models.Restaurant, name string, price int, options models.DishOptions) *models.Dish {
	t.Helper()
	d := &models.Dish{
		Name:         name,
		Price:        price,
		Description:  name + " description",
		RestaurantID: restaurant.ID,
		Options:      options,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("failed to create dish %s: %v", name, err)
	}
	return d
}

func IntPtr(i int) *int { return &i }

func StrPtr(s string) *string { return &s }
