package graphql

import (
	"context"
	"time"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/service"
)

type userResolver struct {
	u *models.User
}

func (r *userResolver) ID() int32         { return int32Of(r.u.ID) }
func (r *userResolver) Email() string     { return r.u.Email }
func (r *userResolver) Role() string      { return string(r.u.Role) }
func (r *userResolver) Verified() bool    { return r.u.Verified }
func (r *userResolver) CreatedAt() string { return r.u.CreatedAt.UTC().Format(time.RFC3339) }

type categoryResolver struct {
	c    *models.Category
	root *Resolver
}

func (r *categoryResolver) ID() int32           { return int32Of(r.c.ID) }
func (r *categoryResolver) Name() string        { return r.c.Name }
func (r *categoryResolver) Slug() string        { return r.c.Slug }
func (r *categoryResolver) CoverImage() *string { return optionalString(r.c.CoverImage) }

func (r *categoryResolver) RestaurantCount(ctx context.Context) (int32, error) {
	count, err := r.root.svc.Categories.CountRestaurants(ctx, r.c)
	if err != nil {
		return 0, err
	}
	return int32(count), nil
}

type restaurantResolver struct {
	r    *models.Restaurant
	root *Resolver
}

func (r *restaurantResolver) ID() int32          { return int32Of(r.r.ID) }
func (r *restaurantResolver) Name() string       { return r.r.Name }
func (r *restaurantResolver) Address() string    { return r.r.Address }
func (r *restaurantResolver) CoverImage() string { return r.r.CoverImage }

func (r *restaurantResolver) Category(ctx context.Context) (*categoryResolver, error) {
	category, err := r.root.svc.Restaurants.Category(ctx, r.r)
	if err != nil || category == nil {
		return nil, err
	}
	return &categoryResolver{c: category, root: r.root}, nil
}

func (r *restaurantResolver) Owner(ctx context.Context) (*userResolver, error) {
	return r.root.lookupUser(ctx, &r.r.OwnerID)
}

func (r *restaurantResolver) Menu(ctx context.Context) ([]*dishResolver, error) {
	dishes, err := r.root.svc.Restaurants.Menu(ctx, r.r.ID)
	if err != nil {
		return nil, err
	}
	return dishResolvers(dishes), nil
}

type dishResolver struct {
	d *models.Dish
}

func (r *dishResolver) ID() int32           { return int32Of(r.d.ID) }
func (r *dishResolver) Name() string        { return r.d.Name }
func (r *dishResolver) Price() int32        { return int32(r.d.Price) }
func (r *dishResolver) Photo() *string      { return optionalString(r.d.Photo) }
func (r *dishResolver) Description() string { return r.d.Description }
func (r *dishResolver) RestaurantID() int32 { return int32Of(r.d.RestaurantID) }

func (r *dishResolver) Options() []*dishOptionResolver {
	out := make([]*dishOptionResolver, len(r.d.Options))
	for i := range r.d.Options {
		out[i] = &dishOptionResolver{o: r.d.Options[i]}
	}
	return out
}

type dishOptionResolver struct {
	o models.DishOption
}

func (r *dishOptionResolver) Name() string  { return r.o.Name }
func (r *dishOptionResolver) Extra() *int32 { return optionalInt(r.o.Extra) }

func (r *dishOptionResolver) Choices() *[]*dishChoiceResolver {
	if r.o.Choices == nil {
		return nil
	}
	out := make([]*dishChoiceResolver, len(r.o.Choices))
	for i := range r.o.Choices {
		out[i] = &dishChoiceResolver{c: r.o.Choices[i]}
	}
	return &out
}

type dishChoiceResolver struct {
	c models.DishChoice
}

func (r *dishChoiceResolver) Name() string  { return r.c.Name }
func (r *dishChoiceResolver) Extra() *int32 { return optionalInt(r.c.Extra) }

type orderResolver struct {
	o    *models.Order
	root *Resolver
}

func (r *orderResolver) ID() int32         { return int32Of(r.o.ID) }
func (r *orderResolver) Total() int32      { return int32(r.o.Total) }
func (r *orderResolver) Status() string    { return string(r.o.Status) }
func (r *orderResolver) CreatedAt() string { return r.o.CreatedAt.UTC().Format(time.RFC3339) }

func (r *orderResolver) Customer(ctx context.Context) (*userResolver, error) {
	return r.root.lookupUser(ctx, r.o.CustomerID)
}

func (r *orderResolver) Driver(ctx context.Context) (*userResolver, error) {
	return r.root.lookupUser(ctx, r.o.DriverID)
}

func (r *orderResolver) Restaurant(ctx context.Context) (*restaurantResolver, error) {
	if r.o.RestaurantID == nil {
		return nil, nil
	}
	restaurant, err := r.root.svc.Restaurants.FindRestaurantByID(ctx, *r.o.RestaurantID)
	if service.KindOf(err) == service.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurantResolver{r: restaurant, root: r.root}, nil
}

func (r *orderResolver) Items(ctx context.Context) ([]*orderItemResolver, error) {
	items, err := r.root.svc.Orders.Items(ctx, r.o.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*orderItemResolver, len(items))
	for i := range items {
		out[i] = &orderItemResolver{i: &items[i], root: r.root}
	}
	return out, nil
}

type orderItemResolver struct {
	i    *models.OrderItem
	root *Resolver
}

func (r *orderItemResolver) ID() int32 { return int32Of(r.i.ID) }

// Dish is null once the dish has been deleted from the menu.
func (r *orderItemResolver) Dish(ctx context.Context) (*dishResolver, error) {
	if r.i.DishID == nil {
		return nil, nil
	}
	dish, err := r.root.svc.Dishes.FindDishByID(ctx, *r.i.DishID)
	if service.KindOf(err) == service.KindNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dishResolver{d: dish}, nil
}

func (r *orderItemResolver) Options() []*orderItemOptionResolver {
	out := make([]*orderItemOptionResolver, len(r.i.Options))
	for i := range r.i.Options {
		out[i] = &orderItemOptionResolver{o: r.i.Options[i]}
	}
	return out
}

type orderItemOptionResolver struct {
	o models.OrderItemOption
}

func (r *orderItemOptionResolver) Name() string    { return r.o.Name }
func (r *orderItemOptionResolver) Choice() *string { return r.o.Choice }

func (r *Resolver) lookupUser(ctx context.Context, id *uint) (*userResolver, error) {
	if id == nil {
		return nil, nil
	}
	user, err := r.svc.Users.FindByID(ctx, *id)
	if err != nil {
		// FindByID reports every failure as not found
		return nil, nil
	}
	return &userResolver{u: user}, nil
}

func dishResolvers(dishes []models.Dish) []*dishResolver {
	out := make([]*dishResolver, len(dishes))
	for i := range dishes {
		out[i] = &dishResolver{d: &dishes[i]}
	}
	return out
}

func (r *Resolver) restaurantResolvers(restaurants []models.Restaurant) []*restaurantResolver {
	out := make([]*restaurantResolver, len(restaurants))
	for i := range restaurants {
		out[i] = &restaurantResolver{r: &restaurants[i], root: r}
	}
	return out
}
