// Package repository defines one store interface per entity and a gorm
// implementation of each. Relations are resolved with explicit calls; no
// association loading happens behind the caller's back.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	// Delete removes the user with its verification and owned restaurants,
	// and detaches the user from any orders.
	Delete(ctx context.Context, id uint) error
}

type VerificationRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Verification, error)
	Create(ctx context.Context, v *models.Verification) error
	Delete(ctx context.Context, id uint) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	CountRestaurants(ctx context.Context, categoryID uint) (int64, error)
}

// RestaurantFilter narrows FindAndCount. Zero values match everything.
type RestaurantFilter struct {
	CategoryID *uint
	// NameContains is matched case-insensitively as a substring.
	NameContains string
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Restaurant, error)
	FindAndCount(ctx context.Context, filter RestaurantFilter, w pagination.Window) ([]models.Restaurant, int64, error)
	FindIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error)
	Create(ctx context.Context, r *models.Restaurant) error
	Save(ctx context.Context, r *models.Restaurant) error
	// Delete removes the restaurant and its dishes.
	Delete(ctx context.Context, id uint) error
}

type DishRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Dish, error)
	FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.Dish, error)
	Create(ctx context.Context, d *models.Dish) error
	Save(ctx context.Context, d *models.Dish) error
	Delete(ctx context.Context, id uint) error
}

// OrderFilter narrows Find. Set fields are combined with AND.
type OrderFilter struct {
	CustomerID    *uint
	DriverID      *uint
	RestaurantIDs []uint
	Status        *models.OrderStatus
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	Find(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	Create(ctx context.Context, o *models.Order) error
}

type OrderItemRepository interface {
	FindByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	Create(ctx context.Context, item *models.OrderItem) error
}

// Store groups the repositories of one database handle.
type Store interface {
	Users() UserRepository
	Verifications() VerificationRepository
	Categories() CategoryRepository
	Restaurants() RestaurantRepository
	Dishes() DishRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	// Transaction runs fn against a Store bound to a single transaction.
	// Returning an error from fn rolls the transaction back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// translate maps gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return err
}
