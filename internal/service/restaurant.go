package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
	"github.com/pageza/nubereats/backend/internal/repository"
)

type CreateRestaurantInput struct {
	Name         string
	Address      string
	CoverImage   string
	CategoryName string
}

// EditRestaurantInput changes only the fields that are set.
type EditRestaurantInput struct {
	RestaurantID uint
	Name         *string
	Address      *string
	CoverImage   *string
	CategoryName *string
}

// RestaurantPage is one page of a restaurant listing
type RestaurantPage struct {
	Restaurants  []models.Restaurant
	TotalPages   int
	TotalResults int
}

type RestaurantService struct {
	store repository.Store
	log   *zap.Logger
}

func NewRestaurantService(store repository.Store, log *zap.Logger) *RestaurantService {
	return &RestaurantService{store: store, log: log}
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, owner *models.User, in CreateRestaurantInput) (*models.Restaurant, error) {
	category, err := getOrCreateCategory(ctx, s.store, in.CategoryName)
	if err != nil {
		s.log.Error("failed to resolve category", zap.String("category", in.CategoryName), zap.Error(err))
		return nil, internal(MsgCreateRestaurantFailed, err)
	}

	restaurant := &models.Restaurant{
		Name:       in.Name,
		Address:    in.Address,
		CoverImage: in.CoverImage,
		OwnerID:    owner.ID,
		CategoryID: &category.ID,
	}
	if err := s.store.Restaurants().Create(ctx, restaurant); err != nil {
		s.log.Error("failed to create restaurant", zap.Uint("owner_id", owner.ID), zap.Error(err))
		return nil, internal(MsgCreateRestaurantFailed, err)
	}
	return restaurant, nil
}

func (s *RestaurantService) EditRestaurant(ctx context.Context, owner *models.User, in EditRestaurantInput) (*models.Restaurant, error) {
	restaurant, err := s.store.Restaurants().FindByID(ctx, in.RestaurantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error("failed to load restaurant", zap.Uint("restaurant_id", in.RestaurantID), zap.Error(err))
		return nil, internal(MsgEditRestaurantFailed, err)
	}
	if err := assertOwnsRestaurant(owner, restaurant, MsgEditRestaurantDenied); err != nil {
		return nil, err
	}

	if in.CategoryName != nil {
		category, err := getOrCreateCategory(ctx, s.store, *in.CategoryName)
		if err != nil {
			s.log.Error("failed to resolve category", zap.String("category", *in.CategoryName), zap.Error(err))
			return nil, internal(MsgEditRestaurantFailed, err)
		}
		restaurant.CategoryID = &category.ID
	}
	if in.Name != nil {
		restaurant.Name = *in.Name
	}
	if in.Address != nil {
		restaurant.Address = *in.Address
	}
	if in.CoverImage != nil {
		restaurant.CoverImage = *in.CoverImage
	}

	if err := s.store.Restaurants().Save(ctx, restaurant); err != nil {
		s.log.Error("failed to save restaurant", zap.Uint("restaurant_id", restaurant.ID), zap.Error(err))
		return nil, internal(MsgEditRestaurantFailed, err)
	}
	return restaurant, nil
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, owner *models.User, restaurantID uint) error {
	restaurant, err := s.store.Restaurants().FindByID(ctx, restaurantID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(MsgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error("failed to load restaurant", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
		return internal(MsgDeleteRestaurantFailed, err)
	}
	if err := assertOwnsRestaurant(owner, restaurant, MsgDeleteRestaurantDenied); err != nil {
		return err
	}

	if err := s.store.Restaurants().Delete(ctx, restaurant.ID); err != nil {
		s.log.Error("failed to delete restaurant", zap.Uint("restaurant_id", restaurant.ID), zap.Error(err))
		return internal(MsgDeleteRestaurantFailed, err)
	}
	return nil
}

func (s *RestaurantService) AllRestaurants(ctx context.Context, page int) (*RestaurantPage, error) {
	result, err := s.list(ctx, repository.RestaurantFilter{}, page)
	if err != nil {
		s.log.Error("failed to load restaurants", zap.Int("page", page), zap.Error(err))
		return nil, internal(MsgLoadRestaurantsFailed, err)
	}
	return result, nil
}

// SearchRestaurantByName matches query as a case-insensitive substring of the name
func (s *RestaurantService) SearchRestaurantByName(ctx context.Context, query string, page int) (*RestaurantPage, error) {
	result, err := s.list(ctx, repository.RestaurantFilter{NameContains: query}, page)
	if err != nil {
		s.log.Error("failed to search restaurants", zap.String("query", query), zap.Error(err))
		return nil, internal(MsgSearchRestaurantFailed, err)
	}
	return result, nil
}

func (s *RestaurantService) FindRestaurantByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	restaurant, err := s.store.Restaurants().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error("failed to find restaurant", zap.Uint("restaurant_id", id), zap.Error(err))
		return nil, internal(MsgFindRestaurantFailed, err)
	}
	return restaurant, nil
}

// Menu lists the dishes of a restaurant
func (s *RestaurantService) Menu(ctx context.Context, restaurantID uint) ([]models.Dish, error) {
	dishes, err := s.store.Dishes().FindByRestaurant(ctx, restaurantID)
	if err != nil {
		s.log.Error("failed to load menu", zap.Uint("restaurant_id", restaurantID), zap.Error(err))
		return nil, internal(MsgFindRestaurantFailed, err)
	}
	return dishes, nil
}

// Category returns the category of restaurant, or nil if it has none
func (s *RestaurantService) Category(ctx context.Context, restaurant *models.Restaurant) (*models.Category, error) {
	if restaurant.CategoryID == nil {
		return nil, nil
	}
	category, err := s.store.Categories().FindByID(ctx, *restaurant.CategoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Error("failed to load category", zap.Uint("category_id", *restaurant.CategoryID), zap.Error(err))
		return nil, internal(MsgFindCategoryFailed, err)
	}
	return category, nil
}

func (s *RestaurantService) list(ctx context.Context, filter repository.RestaurantFilter, page int) (*RestaurantPage, error) {
	restaurants, total, err := s.store.Restaurants().FindAndCount(ctx, filter, pagination.Paginate(page, pagination.PageSize))
	if err != nil {
		return nil, err
	}
	return &RestaurantPage{
		Restaurants:  restaurants,
		TotalPages:   pagination.TotalPages(total, pagination.PageSize),
		TotalResults: int(total),
	}, nil
}
