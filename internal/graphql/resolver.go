package graphql

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/metrics"
	"github.com/pageza/nubereats/backend/internal/middleware"
	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/service"
)

var (
	// ErrUnauthenticated is returned when an operation needs a principal and the request has none.
	ErrUnauthenticated = errors.New("Forbidden resource: authentication required")
	// ErrForbiddenRole is returned when the principal's role may not run the operation.
	ErrForbiddenRole = errors.New("Forbidden resource")
)

// Services are the domain services the resolvers delegate to
type Services struct {
	Users       *service.UserService
	Restaurants *service.RestaurantService
	Categories  *service.CategoryService
	Dishes      *service.DishService
	Orders      *service.OrderService
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	svc Services
	log *zap.Logger
}

func NewResolver(svc Services, log *zap.Logger) *Resolver {
	return &Resolver{svc: svc, log: log}
}

// authorize returns the request principal if it holds one of roles. With no
// roles any authenticated principal passes.
func authorize(ctx context.Context, op string, roles ...models.UserRole) (*models.User, error) {
	user := middleware.PrincipalFrom(ctx)
	if user == nil {
		metrics.GraphQLOperations.WithLabelValues(op, "denied").Inc()
		return nil, ErrUnauthenticated
	}
	if len(roles) == 0 {
		return user, nil
	}
	for _, role := range roles {
		if user.Role == role {
			return user, nil
		}
	}
	metrics.GraphQLOperations.WithLabelValues(op, "denied").Inc()
	return nil, ErrForbiddenRole
}

// core is the {ok, error} pair every output carries.
type core struct {
	ok  bool
	err *string
}

func (c core) Ok() bool { return c.ok }

func (c core) Error() *string { return c.err }

// outcome converts a service error into the output core and records it.
func outcome(op string, err error) core {
	if err == nil {
		metrics.GraphQLOperations.WithLabelValues(op, "ok").Inc()
		return core{ok: true}
	}
	metrics.GraphQLOperations.WithLabelValues(op, "error").Inc()
	msg := service.PublicMessage(err)
	return core{err: &msg}
}

type mutationOutput struct {
	core
}

func idOf(id int32) uint { return uint(id) }

func int32Of(id uint) int32 { return int32(id) }

func optionalID(id *uint) *int32 {
	if id == nil {
		return nil
	}
	v := int32(*id)
	return &v
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalInt(i *int) *int32 {
	if i == nil {
		return nil
	}
	v := int32(*i)
	return &v
}

func intOf(i *int32) *int {
	if i == nil {
		return nil
	}
	v := int(*i)
	return &v
}

// nonEmpty treats an empty string like an omitted field.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
