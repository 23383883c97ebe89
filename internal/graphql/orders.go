package graphql

import (
	"context"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/service"
)

type orderItemOptionInput struct {
	Name   string  `gql:"name" validate:"required"`
	Choice *string `gql:"choice"`
}

type createOrderItemInput struct {
	DishID  int32                   `gql:"dishId" validate:"min=1"`
	Options *[]orderItemOptionInput `gql:"options" validate:"omitempty,dive"`
}

type createOrderInput struct {
	RestaurantID int32                  `gql:"restaurantId" validate:"min=1"`
	Items        []createOrderItemInput `gql:"items" validate:"dive"`
}

type getOrdersInput struct {
	Status *string `gql:"status" validate:"omitempty,oneof=Pending Cooking Delivering Completed"`
}

type getOrderInput struct {
	ID int32 `gql:"id" validate:"min=1"`
}

type createOrderOutput struct {
	core
	orderID *int32
}

func (o *createOrderOutput) OrderID() *int32 { return o.orderID }

type getOrdersOutput struct {
	core
	root   *Resolver
	orders []models.Order
}

func (o *getOrdersOutput) Orders() *[]*orderResolver {
	if !o.ok {
		return nil
	}
	out := make([]*orderResolver, len(o.orders))
	for i := range o.orders {
		out[i] = &orderResolver{o: &o.orders[i], root: o.root}
	}
	return &out
}

type getOrderOutput struct {
	core
	root  *Resolver
	order *models.Order
}

func (o *getOrderOutput) Order() *orderResolver {
	if o.order == nil {
		return nil
	}
	return &orderResolver{o: o.order, root: o.root}
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input createOrderInput }) (*createOrderOutput, error) {
	customer, err := authorize(ctx, "createOrder", models.RoleClient)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	in := service.CreateOrderInput{
		RestaurantID: idOf(args.Input.RestaurantID),
		Items:        make([]service.CreateOrderItemInput, 0, len(args.Input.Items)),
	}
	for _, item := range args.Input.Items {
		line := service.CreateOrderItemInput{DishID: idOf(item.DishID)}
		if item.Options != nil {
			for _, opt := range *item.Options {
				line.Options = append(line.Options, models.OrderItemOption{Name: opt.Name, Choice: opt.Choice})
			}
		}
		in.Items = append(in.Items, line)
	}

	order, err := r.svc.Orders.CreateOrder(ctx, customer, in)
	out := &createOrderOutput{core: outcome("createOrder", err)}
	if err == nil {
		id := int32Of(order.ID)
		out.orderID = &id
	}
	return out, nil
}

func (r *Resolver) GetOrders(ctx context.Context, args struct{ Input getOrdersInput }) (*getOrdersOutput, error) {
	user, err := authorize(ctx, "getOrders")
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	var status *models.OrderStatus
	if args.Input.Status != nil {
		s, err := models.ParseOrderStatus(*args.Input.Status)
		if err != nil {
			return nil, err
		}
		status = &s
	}

	orders, err := r.svc.Orders.GetOrders(ctx, user, status)
	return &getOrdersOutput{core: outcome("getOrders", err), root: r, orders: orders}, nil
}

func (r *Resolver) GetOrder(ctx context.Context, args struct{ Input getOrderInput }) (*getOrderOutput, error) {
	user, err := authorize(ctx, "getOrder")
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	order, err := r.svc.Orders.GetOrder(ctx, user, idOf(args.Input.ID))
	return &getOrderOutput{core: outcome("getOrder", err), root: r, order: order}, nil
}
