package graphql

import (
	"context"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/service"
)

type dishChoiceInput struct {
	Name  string `gql:"name" validate:"required"`
	Extra *int32 `gql:"extra" validate:"omitempty,min=0,max=1000000"`
}

type dishOptionInput struct {
	Name    string             `gql:"name" validate:"required"`
	Choices *[]dishChoiceInput `gql:"choices" validate:"omitempty,dive"`
	Extra   *int32             `gql:"extra" validate:"omitempty,min=0,max=1000000"`
}

type createDishInput struct {
	RestaurantID int32              `gql:"restaurantId" validate:"min=1"`
	Name         string             `gql:"name" validate:"required,max=255"`
	Price        int32              `gql:"price" validate:"min=0,max=1000000"`
	Photo        *string            `gql:"photo" validate:"omitempty,max=2048"`
	Description  string             `gql:"description" validate:"required,max=140"`
	Options      *[]dishOptionInput `gql:"options" validate:"omitempty,dive"`
}

type editDishInput struct {
	DishID      int32              `gql:"dishId" validate:"min=1"`
	Name        *string            `gql:"name" validate:"omitempty,min=1,max=255"`
	Price       *int32             `gql:"price" validate:"omitempty,min=0,max=1000000"`
	Photo       *string            `gql:"photo" validate:"omitempty,max=2048"`
	Description *string            `gql:"description" validate:"omitempty,min=1,max=140"`
	Options     *[]dishOptionInput `gql:"options" validate:"omitempty,dive"`
}

type dishIDInput struct {
	DishID int32 `gql:"dishId" validate:"min=1"`
}

type createDishOutput struct {
	core
	dishID *int32
}

func (o *createDishOutput) DishID() *int32 { return o.dishID }

func dishOptions(in *[]dishOptionInput) models.DishOptions {
	if in == nil {
		return models.DishOptions{}
	}
	out := make(models.DishOptions, 0, len(*in))
	for _, opt := range *in {
		option := models.DishOption{Name: opt.Name, Extra: intOf(opt.Extra)}
		if opt.Choices != nil {
			option.Choices = make([]models.DishChoice, 0, len(*opt.Choices))
			for _, c := range *opt.Choices {
				option.Choices = append(option.Choices, models.DishChoice{Name: c.Name, Extra: intOf(c.Extra)})
			}
		}
		out = append(out, option)
	}
	return out
}

func (r *Resolver) CreateDish(ctx context.Context, args struct{ Input createDishInput }) (*createDishOutput, error) {
	owner, err := authorize(ctx, "createDish", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	in := service.CreateDishInput{
		RestaurantID: idOf(args.Input.RestaurantID),
		Name:         args.Input.Name,
		Price:        int(args.Input.Price),
		Description:  args.Input.Description,
		Options:      dishOptions(args.Input.Options),
	}
	if args.Input.Photo != nil {
		in.Photo = *args.Input.Photo
	}

	dish, err := r.svc.Dishes.CreateDish(ctx, owner, in)
	out := &createDishOutput{core: outcome("createDish", err)}
	if err == nil {
		id := int32Of(dish.ID)
		out.dishID = &id
	}
	return out, nil
}

func (r *Resolver) EditDish(ctx context.Context, args struct{ Input editDishInput }) (*mutationOutput, error) {
	owner, err := authorize(ctx, "editDish", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}

	in := service.EditDishInput{
		DishID:      idOf(args.Input.DishID),
		Name:        args.Input.Name,
		Price:       intOf(args.Input.Price),
		Photo:       args.Input.Photo,
		Description: args.Input.Description,
	}
	if args.Input.Options != nil {
		options := dishOptions(args.Input.Options)
		in.Options = &options
	}

	_, err = r.svc.Dishes.EditDish(ctx, owner, in)
	return &mutationOutput{outcome("editDish", err)}, nil
}

func (r *Resolver) DeleteDish(ctx context.Context, args struct{ Input dishIDInput }) (*mutationOutput, error) {
	owner, err := authorize(ctx, "deleteDish", models.RoleOwner)
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	err = r.svc.Dishes.DeleteDish(ctx, owner, idOf(args.Input.DishID))
	return &mutationOutput{outcome("deleteDish", err)}, nil
}
