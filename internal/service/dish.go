package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/repository"
)

type CreateDishInput struct {
	RestaurantID uint
	Name         string
	Price        int
	Photo        string
	Description  string
	Options      models.DishOptions
}

// EditDishInput changes only the fields that are set.
type EditDishInput struct {
	DishID      uint
	Name        *string
	Price       *int
	Photo       *string
	Description *string
	Options     *models.DishOptions
}

type DishService struct {
	store repository.Store
	log   *zap.Logger
}

func NewDishService(store repository.Store, log *zap.Logger) *DishService {
	return &DishService{store: store, log: log}
}

func (s *DishService) CreateDish(ctx context.Context, owner *models.User, in CreateDishInput) (*models.Dish, error) {
	restaurant, err := s.store.Restaurants().FindByID(ctx, in.RestaurantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error("failed to load restaurant", zap.Uint("restaurant_id", in.RestaurantID), zap.Error(err))
		return nil, internal(MsgCreateDishFailed, err)
	}
	if err := assertOwnsRestaurant(owner, restaurant, MsgCreateDishDenied); err != nil {
		return nil, err
	}

	dish := &models.Dish{
		Name:         in.Name,
		Price:        in.Price,
		Photo:        in.Photo,
		Description:  in.Description,
		RestaurantID: restaurant.ID,
		Options:      in.Options,
	}
	if err := s.store.Dishes().Create(ctx, dish); err != nil {
		s.log.Error("failed to create dish", zap.Uint("restaurant_id", restaurant.ID), zap.Error(err))
		return nil, internal(MsgCreateDishFailed, err)
	}
	return dish, nil
}

func (s *DishService) EditDish(ctx context.Context, owner *models.User, in EditDishInput) (*models.Dish, error) {
	dish, err := s.ownedDish(ctx, owner, in.DishID, MsgEditDishDenied, MsgEditDishFailed)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if in.Photo != nil {
		dish.Photo = *in.Photo
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Options != nil {
		dish.Options = *in.Options
	}

	if err := s.store.Dishes().Save(ctx, dish); err != nil {
		s.log.Error("failed to save dish", zap.Uint("dish_id", dish.ID), zap.Error(err))
		return nil, internal(MsgEditDishFailed, err)
	}
	return dish, nil
}

func (s *DishService) DeleteDish(ctx context.Context, owner *models.User, dishID uint) error {
	dish, err := s.ownedDish(ctx, owner, dishID, MsgDeleteDishDenied, MsgDeleteDishFailed)
	if err != nil {
		return err
	}
	if err := s.store.Dishes().Delete(ctx, dish.ID); err != nil {
		s.log.Error("failed to delete dish", zap.Uint("dish_id", dish.ID), zap.Error(err))
		return internal(MsgDeleteDishFailed, err)
	}
	return nil
}

// ownedDish loads a dish and its restaurant and checks owner owns both.
func (s *DishService) ownedDish(ctx context.Context, owner *models.User, dishID uint, deniedMsg, failedMsg string) (*models.Dish, error) {
	dish, err := s.store.Dishes().FindByID(ctx, dishID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgDishNotFound)
	}
	if err != nil {
		s.log.Error("failed to load dish", zap.Uint("dish_id", dishID), zap.Error(err))
		return nil, internal(failedMsg, err)
	}

	restaurant, err := s.store.Restaurants().FindByID(ctx, dish.RestaurantID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		s.log.Error("failed to load restaurant", zap.Uint("restaurant_id", dish.RestaurantID), zap.Error(err))
		return nil, internal(failedMsg, err)
	}
	if err := assertOwnsDish(owner, dish, restaurant, deniedMsg); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) FindDishByID(ctx context.Context, id uint) (*models.Dish, error) {
	dish, err := s.store.Dishes().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgDishNotFound)
	}
	if err != nil {
		s.log.Error("failed to load dish", zap.Uint("dish_id", id), zap.Error(err))
		return nil, internal(MsgLoadDishFailed, err)
	}
	return dish, nil
}
