package repository

import (
	"context"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository                 { return &userRepository{db: s.db} }
func (s *gormStore) Verifications() VerificationRepository { return &verificationRepository{db: s.db} }
func (s *gormStore) Categories() CategoryRepository        { return &categoryRepository{db: s.db} }
func (s *gormStore) Restaurants() RestaurantRepository     { return &restaurantRepository{db: s.db} }
func (s *gormStore) Dishes() DishRepository                { return &dishRepository{db: s.db} }
func (s *gormStore) Orders() OrderRepository               { return &orderRepository{db: s.db} }
func (s *gormStore) OrderItems() OrderItemRepository       { return &orderItemRepository{db: s.db} }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
