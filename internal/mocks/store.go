package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
	"github.com/pageza/nubereats/backend/internal/repository"
)

// MockStore hands out the mock repositories below. Transaction runs fn
// against the same store, so expectations set on the repositories apply
// inside and outside transactions alike.
type MockStore struct {
	UserRepo         *MockUserRepository
	VerificationRepo *MockVerificationRepository
	CategoryRepo     *MockCategoryRepository
	RestaurantRepo   *MockRestaurantRepository
	DishRepo         *MockDishRepository
	OrderRepo        *MockOrderRepository
	OrderItemRepo    *MockOrderItemRepository
}

func NewMockStore() *MockStore {
	return &MockStore{
		UserRepo:         &MockUserRepository{},
		VerificationRepo: &MockVerificationRepository{},
		CategoryRepo:     &MockCategoryRepository{},
		RestaurantRepo:   &MockRestaurantRepository{},
		DishRepo:         &MockDishRepository{},
		OrderRepo:        &MockOrderRepository{},
		OrderItemRepo:    &MockOrderItemRepository{},
	}
}

func (s *MockStore) Users() repository.UserRepository                 { return s.UserRepo }
func (s *MockStore) Verifications() repository.VerificationRepository { return s.VerificationRepo }
func (s *MockStore) Categories() repository.CategoryRepository        { return s.CategoryRepo }
func (s *MockStore) Restaurants() repository.RestaurantRepository     { return s.RestaurantRepo }
func (s *MockStore) Dishes() repository.DishRepository                { return s.DishRepo }
func (s *MockStore) Orders() repository.OrderRepository               { return s.OrderRepo }
func (s *MockStore) OrderItems() repository.OrderItemRepository       { return s.OrderItemRepo }

func (s *MockStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return fn(s)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) FindByCode(ctx context.Context, code string) (*models.Verification, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Verification), args.Error(1)
}

func (m *MockVerificationRepository) Create(ctx context.Context, v *models.Verification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVerificationRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVerificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) CountRestaurants(ctx context.Context, categoryID uint) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) FindAndCount(ctx context.Context, filter repository.RestaurantFilter, w pagination.Window) ([]models.Restaurant, int64, error) {
	args := m.Called(ctx, filter, w)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Restaurant), args.Get(1).(int64), args.Error(2)
}

func (m *MockRestaurantRepository) FindIDsByOwner(ctx context.Context, ownerID uint) ([]uint, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockRestaurantRepository) Create(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Save(ctx context.Context, r *models.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) FindByID(ctx context.Context, id uint) (*models.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByRestaurant(ctx context.Context, restaurantID uint) ([]models.Dish, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) Create(ctx context.Context, d *models.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Save(ctx context.Context, d *models.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter repository.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, o *models.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) FindByOrder(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Create(ctx context.Context, item *models.OrderItem) error {
	return m.Called(ctx, item).Error(0)
}

var _ repository.Store = (*MockStore)(nil)
