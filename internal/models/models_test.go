package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(All()...))
	return db
}

func intPtr(i int) *int { return &i }

func TestUserPasswordHashedOnCreate(t *testing.T) {
	db := setupTestDB(t)
	user := &User{Email: "a@test.com", Password: "12345", Role: RoleClient}
	require.NoError(t, db.Create(user).Error)

	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "12345", user.PasswordHash)
	assert.Empty(t, user.Password)

	ok, err := user.CheckPassword("12345")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = user.CheckPassword("wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserSaveWithoutPasswordKeepsHash(t *testing.T) {
	db := setupTestDB(t)
	user := &User{Email: "a@test.com", Password: "12345", Role: RoleOwner}
	require.NoError(t, db.Create(user).Error)
	hash := user.PasswordHash

	user.Email = "b@test.com"
	require.NoError(t, db.Save(user).Error)
	assert.Equal(t, hash, user.PasswordHash)

	user.Password = "new-password"
	require.NoError(t, db.Save(user).Error)
	assert.NotEqual(t, hash, user.PasswordHash)

	var stored User
	require.NoError(t, db.First(&stored, user.ID).Error)
	ok, err := stored.CheckPassword("new-password")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPasswordCorruptHash(t *testing.T) {
	user := &User{PasswordHash: "not-a-bcrypt-hash"}
	ok, err := user.CheckPassword("12345")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestDuplicateEmailTranslated(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&User{Email: "a@test.com", Password: "x", Role: RoleClient}).Error)
	err := db.Create(&User{Email: "a@test.com", Password: "y", Role: RoleClient}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("Owner")
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)

	_, err = ParseUserRole("owner")
	assert.Error(t, err)
}

func TestVerificationCodeGenerated(t *testing.T) {
	db := setupTestDB(t)
	v := &Verification{UserID: 1}
	require.NoError(t, db.Create(v).Error)
	assert.Len(t, v.Code, 36)

	other := &Verification{UserID: 2}
	require.NoError(t, db.Create(other).Error)
	assert.NotEqual(t, v.Code, other.Code)
}

func TestDishOptionsColumn(t *testing.T) {
	db := setupTestDB(t)
	dish := &Dish{
		Name:         "Pizza",
		Price:        10,
		Description:  "Cheesy",
		RestaurantID: 1,
		Options: DishOptions{
			{Name: "Size", Choices: []DishChoice{{Name: "L", Extra: intPtr(3)}, {Name: "S"}}},
			{Name: "Pickle", Extra: intPtr(1)},
		},
	}
	require.NoError(t, db.Create(dish).Error)

	var stored Dish
	require.NoError(t, db.First(&stored, dish.ID).Error)
	assert.Equal(t, dish.Options, stored.Options)

	size, ok := stored.Options.Option("Size")
	require.True(t, ok)
	large, ok := size.Choice("L")
	require.True(t, ok)
	assert.Equal(t, 3, *large.Extra)

	_, ok = stored.Options.Option("Sauce")
	assert.False(t, ok)
}

func TestDishWithoutOptionsStoresEmptyList(t *testing.T) {
	db := setupTestDB(t)
	dish := &Dish{Name: "Soup", Price: 4, Description: "Hot", RestaurantID: 1}
	require.NoError(t, db.Create(dish).Error)

	var raw string
	require.NoError(t, db.Raw("SELECT options FROM dishes WHERE id = ?", dish.ID).Scan(&raw).Error)
	assert.Equal(t, "[]", raw)
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCooking))
	assert.True(t, OrderStatusCooking.CanTransitionTo(OrderStatusDelivering))
	assert.True(t, OrderStatusDelivering.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusCooking.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusCompleted))
	assert.False(t, OrderStatusCompleted.CanTransitionTo(OrderStatus("Lost")))

	_, err := ParseOrderStatus("Cancelled")
	assert.Error(t, err)
}

func TestOrderDefaultsToPending(t *testing.T) {
	db := setupTestDB(t)
	order := &Order{Total: 12}
	require.NoError(t, db.Create(order).Error)

	var stored Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, OrderStatusPending, stored.Status)
}
