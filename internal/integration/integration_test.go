// Package integration runs the services against a real Postgres instance.
package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/database"
	"github.com/pageza/nubereats/backend/internal/mocks"
	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/repository"
	"github.com/pageza/nubereats/backend/internal/service"
	"github.com/pageza/nubereats/backend/internal/testhelpers"
)

func setupPostgres(t *testing.T) (*gorm.DB, repository.Store) {
	t.Helper()
	db := testhelpers.SetupPostgres(t)
	require.NoError(t, database.RunMigrations(db, zap.NewNop()))
	return db, repository.NewStore(db)
}

func TestConcurrentCategoryCreation(t *testing.T) {
	db, store := setupPostgres(t)
	categories := service.NewCategoryService(store, zap.NewNop())

	const workers = 8
	ids := make([]uint, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := categories.GetOrCreate(context.Background(), "  Korean   BBQ ")
			errs[i] = err
			if err == nil {
				ids[i] = c.ID
			}
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i])
	}

	var count int64
	db.Model(&models.Category{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestOrderFlowAndAccountDeletion(t *testing.T) {
	db, store := setupPostgres(t)
	ctx := context.Background()
	log := zap.NewNop()
	mailer := &mocks.MockMailer{}
	users := service.NewUserService(store, service.NewTokenService("secret", time.Hour), mailer, log)
	restaurants := service.NewRestaurantService(store, log)
	dishes := service.NewDishService(store, log)
	orders := service.NewOrderService(store, nil, log)

	owner, err := users.CreateAccount(ctx, nil, service.CreateAccountInput{Email: "Owner@Test.com", Password: "pw", Role: models.RoleOwner})
	require.NoError(t, err)
	client, err := users.CreateAccount(ctx, nil, service.CreateAccountInput{Email: "client@test.com", Password: "pw", Role: models.RoleClient})
	require.NoError(t, err)
	assert.Equal(t, "owner@test.com", owner.Email)
	require.Len(t, mailer.Emails(), 2)

	restaurant, err := restaurants.CreateRestaurant(ctx, owner, service.CreateRestaurantInput{
		Name: "Seoul Grill", Address: "1 Main", CoverImage: "x", CategoryName: "Korean BBQ",
	})
	require.NoError(t, err)

	dish, err := dishes.CreateDish(ctx, owner, service.CreateDishInput{
		RestaurantID: restaurant.ID,
		Name:         "Chicken",
		Price:        12,
		Description:  "Fried",
		Options: models.DishOptions{
			{Name: "Spice Level", Choices: []models.DishChoice{{Name: "Hot", Extra: testhelpers.IntPtr(1)}}},
		},
	})
	require.NoError(t, err)

	order, err := orders.CreateOrder(ctx, client, service.CreateOrderInput{
		RestaurantID: restaurant.ID,
		Items: []service.CreateOrderItemInput{
			{DishID: dish.ID, Options: []models.OrderItemOption{{Name: "Spice Level", Choice: testhelpers.StrPtr("Hot")}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 13, order.Total)

	page, err := restaurants.SearchRestaurantByName(ctx, "GRILL", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalResults)

	require.NoError(t, users.DeleteAccount(ctx, owner.ID))

	_, err = restaurants.FindRestaurantByID(ctx, restaurant.ID)
	assert.Equal(t, service.KindNotFound, service.KindOf(err))

	stored, err := orders.GetOrder(ctx, client, order.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RestaurantID)
	assert.Equal(t, 13, stored.Total)

	items, err := orders.Items(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].DishID)

	var dishesLeft int64
	db.Model(&models.Dish{}).Count(&dishesLeft)
	assert.Zero(t, dishesLeft)
}
