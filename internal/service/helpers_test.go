package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/mocks"
	"github.com/pageza/nubereats/backend/internal/repository"
	"github.com/pageza/nubereats/backend/internal/testhelpers"
)

var errStore = errors.New("connection reset")

type testEnv struct {
	db          *gorm.DB
	store       repository.Store
	mailer      *mocks.MockMailer
	tokens      *TokenService
	users       *UserService
	categories  *CategoryService
	restaurants *RestaurantService
	dishes      *DishService
	orders      *OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	store := repository.NewStore(db)
	return newEnvWithStore(db, store)
}

func newEnvWithStore(db *gorm.DB, store repository.Store) *testEnv {
	log := zap.NewNop()
	mailer := &mocks.MockMailer{}
	tokens := NewTokenService("test-secret", time.Hour)
	return &testEnv{
		db:          db,
		store:       store,
		mailer:      mailer,
		tokens:      tokens,
		users:       NewUserService(store, tokens, mailer, log),
		categories:  NewCategoryService(store, log),
		restaurants: NewRestaurantService(store, log),
		dishes:      NewDishService(store, log),
		orders:      NewOrderService(store, nil, log),
	}
}

// assertServiceError checks the kind and client message of err.
func assertServiceError(t *testing.T, err error, kind ErrorKind, msg string) {
	t.Helper()
	var serr *Error
	if assert.True(t, errors.As(err, &serr), "expected *service.Error, got %v", err) {
		assert.Equal(t, kind, serr.Kind)
		assert.Equal(t, msg, serr.Message)
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
