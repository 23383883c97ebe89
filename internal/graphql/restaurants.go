package graphql

import (
	"context"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/pagination"
	"github.com/pageza/nubereats/backend/internal/service"
)

type createRestaurantInput struct {
	Name         string `gql:"name" validate:"required,max=255"`
	Address      string `gql:"address" validate:"required,max=255"`
	CoverImage   string `gql:"coverImage" validate:"required,max=2048"`
	CategoryName string `gql:"categoryName" validate:"required,max=100"`
}

type editRestaurantInput struct {
	RestaurantID int32   `gql:"restaurantId" validate:"min=1"`
	Name         *string `gql:"name" validate:"omitempty,min=1,max=255"`
	Address      *string `gql:"address" validate:"omitempty,min=1,max=255"`
	CoverImage   *string `gql:"coverImage" validate:"omitempty,min=1,max=2048"`
	CategoryName *string `gql:"categoryName" validate:"omitempty,max=100"`
}

type restaurantIDInput struct {
	RestaurantID int32 `gql:"restaurantId" validate:"min=1"`
}

type pageInput struct {
	Page *int32 `gql:"page"`
}

type searchRestaurantInput struct {
	Query string `gql:"query" validate:"required"`
	Page  *int32 `gql:"page"`
}

type categoryInput struct {
	Slug string `gql:"slug" validate:"required"`
	Page *int32 `gql:"page"`
}

type createRestaurantOutput struct {
	core
	restaurantID *int32
}

func (o *createRestaurantOutput) RestaurantID() *int32 { return o.restaurantID }

// pagedOutput carries one page of restaurants; results and restaurants name
// the same list in different outputs.
type pagedOutput struct {
	core
	root *Resolver
	page *service.RestaurantPage
}

func (o *pagedOutput) TotalPages() *int32 {
	if o.page == nil {
		return nil
	}
	v := int32(o.page.TotalPages)
	return &v
}

func (o *pagedOutput) TotalResults() *int32 {
	if o.page == nil {
		return nil
	}
	v := int32(o.page.TotalResults)
	return &v
}

func (o *pagedOutput) Results() *[]*restaurantResolver { return o.restaurants() }

func (o *pagedOutput) Restaurants() *[]*restaurantResolver { return o.restaurants() }

func (o *pagedOutput) restaurants() *[]*restaurantResolver {
	if o.page == nil {
		return nil
	}
	out := o.root.restaurantResolvers(o.page.Restaurants)
	return &out
}

type restaurantOutput struct {
	core
	root       *Resolver
	restaurant *models.Restaurant
}

func (o *restaurantOutput) Restaurant() *restaurantResolver {
	if o.restaurant == nil {
		return nil
	}
	return &restaurantResolver{r: o.restaurant, root: o.root}
}

type allCategoriesOutput struct {
	core
	root       *Resolver
	categories []models.Category
}

func (o *allCategoriesOutput) Categories() *[]*categoryResolver {
	if !o.ok {
		return nil
	}
	out := make([]*categoryResolver, len(o.categories))
	for i := range o.categories {
		out[i] = &categoryResolver{c: &o.categories[i], root: o.root}
	}
	return &out
}

type categoryOutput struct {
	pagedOutput
	category *models.Category
}

func (o *categoryOutput) Category() *categoryResolver {
	if o.category == nil {
		return nil
	}
	return &categoryResolver{c: o.category, root: o.root}
}

func (r *Resolver) CreateRestaurant(ctx context.Context, args struct{ Input createRestaurantInput }) (*createRestaurantOutput, error) {
	owner, err := authorize(ctx, "createRestaurant", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	restaurant, err := r.svc.Restaurants.CreateRestaurant(ctx, owner, service.CreateRestaurantInput{
		Name:         args.Input.Name,
		Address:      args.Input.Address,
		CoverImage:   args.Input.CoverImage,
		CategoryName: args.Input.CategoryName,
	})
	out := &createRestaurantOutput{core: outcome("createRestaurant", err)}
	if err == nil {
		id := int32Of(restaurant.ID)
		out.restaurantID = &id
	}
	return out, nil
}

func (r *Resolver) EditRestaurant(ctx context.Context, args struct{ Input editRestaurantInput }) (*mutationOutput, error) {
	owner, err := authorize(ctx, "editRestaurant", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	_, err = r.svc.Restaurants.EditRestaurant(ctx, owner, service.EditRestaurantInput{
		RestaurantID: idOf(args.Input.RestaurantID),
		Name:         args.Input.Name,
		Address:      args.Input.Address,
		CoverImage:   args.Input.CoverImage,
		CategoryName: nonEmpty(args.Input.CategoryName),
	})
	return &mutationOutput{outcome("editRestaurant", err)}, nil
}

func (r *Resolver) DeleteRestaurant(ctx context.Context, args struct{ Input restaurantIDInput }) (*mutationOutput, error) {
	owner, err := authorize(ctx, "deleteRestaurant", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	err = r.svc.Restaurants.DeleteRestaurant(ctx, owner, idOf(args.Input.RestaurantID))
	return &mutationOutput{outcome("deleteRestaurant", err)}, nil
}

func (r *Resolver) AllRestaurants(ctx context.Context, args struct{ Input pageInput }) (*pagedOutput, error) {
	page, err := r.svc.Restaurants.AllRestaurants(ctx, pagination.PageOrDefault(args.Input.Page))
	return &pagedOutput{core: outcome("allRestaurants", err), root: r, page: page}, nil
}

func (r *Resolver) FindRestaurantByID(ctx context.Context, args struct{ Input restaurantIDInput }) (*restaurantOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	restaurant, err := r.svc.Restaurants.FindRestaurantByID(ctx, idOf(args.Input.RestaurantID))
	return &restaurantOutput{core: outcome("findRestaurantById", err), root: r, restaurant: restaurant}, nil
}

func (r *Resolver) SearchRestaurantByName(ctx context.Context, args struct{ Input searchRestaurantInput }) (*pagedOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	page, err := r.svc.Restaurants.SearchRestaurantByName(ctx, args.Input.Query, pagination.PageOrDefault(args.Input.Page))
	return &pagedOutput{core: outcome("searchRestaurantByName", err), root: r, page: page}, nil
}

func (r *Resolver) AllCategories(ctx context.Context) (*allCategoriesOutput, error) {
	categories, err := r.svc.Categories.AllCategories(ctx)
	return &allCategoriesOutput{core: outcome("allCategories", err), root: r, categories: categories}, nil
}

func (r *Resolver) FindCategoryBySlug(ctx context.Context, args struct{ Input categoryInput }) (*categoryOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	result, err := r.svc.Categories.FindCategoryBySlug(ctx, args.Input.Slug, pagination.PageOrDefault(args.Input.Page))
	out := &categoryOutput{pagedOutput: pagedOutput{core: outcome("findCategoryBySlug", err), root: r}}
	if err == nil {
		out.category = result.Category
		out.page = &service.RestaurantPage{
			Restaurants:  result.Restaurants,
			TotalPages:   result.TotalPages,
			TotalResults: result.TotalResults,
		}
	}
	return out, nil
}
