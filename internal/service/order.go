package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/events"
	"github.com/pageza/nubereats/backend/internal/metrics"
	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/repository"
)

// MaxOrderTotal is the largest total an order may carry. Totals are exposed
// as 32-bit GraphQL Ints.
const MaxOrderTotal = math.MaxInt32

var ErrOrderTotalTooLarge = errors.New("order total exceeds maximum")

type CreateOrderItemInput struct {
	DishID  uint
	Options []models.OrderItemOption
}

type CreateOrderInput struct {
	RestaurantID uint
	Items        []CreateOrderItemInput
}

type OrderService struct {
	store     repository.Store
	publisher events.Publisher
	log       *zap.Logger
}

func NewOrderService(store repository.Store, publisher events.Publisher, log *zap.Logger) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &OrderService{store: store, publisher: publisher, log: log}
}

// CreateOrder prices every item against its dish and stores the order with
// its items in one transaction. Dishes are looked up by id alone; they are
// not required to belong to the ordered restaurant.
func (s *OrderService) CreateOrder(ctx context.Context, customer *models.User, in CreateOrderInput) (*models.Order, error) {
	restaurant, err := s.store.Restaurants().FindByID(ctx, in.RestaurantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgRestaurantNotFound)
	}
	if err != nil {
		s.log.Error("failed to load restaurant", zap.Uint("restaurant_id", in.RestaurantID), zap.Error(err))
		return nil, internal(MsgCreateOrderFailed, err)
	}

	total := 0
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		dish, err := s.store.Dishes().FindByID(ctx, item.DishID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound(MsgDishNotFound)
		}
		if err != nil {
			s.log.Error("failed to load dish", zap.Uint("dish_id", item.DishID), zap.Error(err))
			return nil, internal(MsgCreateOrderFailed, err)
		}

		total += ItemPrice(dish, item.Options)
		if total > MaxOrderTotal {
			s.log.Warn("order total too large", zap.Uint("customer_id", customer.ID), zap.Int("total", total))
			return nil, internal(MsgCreateOrderFailed, ErrOrderTotalTooLarge)
		}
		dishID := dish.ID
		items = append(items, models.OrderItem{DishID: &dishID, Options: item.Options})
	}

	order := &models.Order{
		CustomerID:   &customer.ID,
		RestaurantID: &restaurant.ID,
		Total:        total,
		Status:       models.OrderStatusPending,
	}
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			if err := tx.OrderItems().Create(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("failed to create order", zap.Uint("customer_id", customer.ID), zap.Error(err))
		return nil, internal(MsgCreateOrderFailed, err)
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderTotal.Observe(float64(order.Total))

	event := events.OrderCreated{
		OrderID:      order.ID,
		CustomerID:   customer.ID,
		RestaurantID: restaurant.ID,
		Total:        order.Total,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, events.TopicOrderCreated, event); err != nil {
		s.log.Warn("failed to publish order event", zap.Uint("order_id", order.ID), zap.Error(err))
	}
	return order, nil
}

// GetOrders lists the orders visible to user: a client's own orders, a
// driver's rides, the orders of an owner's restaurants, or every order for
// an admin.
func (s *OrderService) GetOrders(ctx context.Context, user *models.User, status *models.OrderStatus) ([]models.Order, error) {
	filter := repository.OrderFilter{Status: status}
	switch user.Role {
	case models.RoleClient:
		filter.CustomerID = &user.ID
	case models.RoleDelivery:
		filter.DriverID = &user.ID
	case models.RoleOwner:
		ids, err := s.store.Restaurants().FindIDsByOwner(ctx, user.ID)
		if err != nil {
			s.log.Error("failed to load owned restaurants", zap.Uint("user_id", user.ID), zap.Error(err))
			return nil, internal(MsgLoadOrdersFailed, err)
		}
		filter.RestaurantIDs = ids
		if filter.RestaurantIDs == nil {
			filter.RestaurantIDs = []uint{}
		}
	case models.RoleAdmin:
	default:
		return []models.Order{}, nil
	}

	orders, err := s.store.Orders().Find(ctx, filter)
	if err != nil {
		s.log.Error("failed to load orders", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, internal(MsgLoadOrdersFailed, err)
	}
	return orders, nil
}

// GetOrder returns one order if user is allowed to see it
func (s *OrderService) GetOrder(ctx context.Context, user *models.User, orderID uint) (*models.Order, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(MsgOrderNotFound)
	}
	if err != nil {
		s.log.Error("failed to load order", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, internal(MsgLoadOrderFailed, err)
	}

	allowed, err := s.canSeeOrder(ctx, user, order)
	if err != nil {
		s.log.Error("failed to check order access", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, internal(MsgLoadOrderFailed, err)
	}
	if !allowed {
		return nil, forbidden(MsgOrderForbidden)
	}
	return order, nil
}

// Items lists the lines of an order
func (s *OrderService) Items(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	items, err := s.store.OrderItems().FindByOrder(ctx, orderID)
	if err != nil {
		s.log.Error("failed to load order items", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, internal(MsgLoadOrderFailed, err)
	}
	return items, nil
}

func (s *OrderService) canSeeOrder(ctx context.Context, user *models.User, order *models.Order) (bool, error) {
	switch user.Role {
	case models.RoleAdmin:
		return true, nil
	case models.RoleClient:
		return order.CustomerID != nil && *order.CustomerID == user.ID, nil
	case models.RoleDelivery:
		return order.DriverID != nil && *order.DriverID == user.ID, nil
	case models.RoleOwner:
		if order.RestaurantID == nil {
			return false, nil
		}
		restaurant, err := s.store.Restaurants().FindByID(ctx, *order.RestaurantID)
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return OwnsRestaurant(user, restaurant), nil
	}
	return false, nil
}
