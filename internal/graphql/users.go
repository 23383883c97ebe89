package graphql

import (
	"context"

	"github.com/pageza/nubereats/backend/internal/middleware"
	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/service"
)

type createAccountInput struct {
	Email    string `gql:"email" validate:"required,email,max=255"`
	Password string `gql:"password" validate:"required,max=72"`
	Role     string `gql:"role" validate:"required,oneof=Admin Client Owner Delivery"`
}

type loginInput struct {
	Email    string `gql:"email" validate:"required,email"`
	Password string `gql:"password" validate:"required"`
}

type editProfileInput struct {
	Email    *string `gql:"email" validate:"omitempty,email,max=255"`
	Password *string `gql:"password" validate:"omitempty,max=72"`
}

type userProfileArgs struct {
	UserID int32 `gql:"userId" validate:"min=1"`
}

type verifyEmailInput struct {
	Code string `gql:"code" validate:"required"`
}

type loginOutput struct {
	core
	token *string
}

func (o *loginOutput) Token() *string { return o.token }

type userProfileOutput struct {
	core
	user *models.User
}

func (o *userProfileOutput) User() *userResolver {
	if o.user == nil {
		return nil
	}
	return &userResolver{u: o.user}
}

// CreateAccount is open to anonymous callers. The principal, if any, is
// passed on so an Admin can create further Admin accounts.
func (r *Resolver) CreateAccount(ctx context.Context, args struct{ Input createAccountInput }) (*mutationOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	role, err := models.ParseUserRole(args.Input.Role)
	if err != nil {
		return nil, err
	}

	_, err = r.svc.Users.CreateAccount(ctx, middleware.PrincipalFrom(ctx), service.CreateAccountInput{
		Email:    args.Input.Email,
		Password: args.Input.Password,
		Role:     role,
	})
	return &mutationOutput{outcome("createAccount", err)}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Input loginInput }) (*loginOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	token, err := r.svc.Users.Login(ctx, args.Input.Email, args.Input.Password)
	out := &loginOutput{core: outcome("login", err)}
	if err == nil {
		out.token = &token
	}
	return out, nil
}

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	user, err := authorize(ctx, "me")
	if err != nil {
		return nil, err
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) UserProfile(ctx context.Context, args userProfileArgs) (*userProfileOutput, error) {
	if _, err := authorize(ctx, "userProfile"); err != nil {
		return nil, err
	}
	if err := validateInput(args); err != nil {
		return nil, err
	}
	user, err := r.svc.Users.FindByID(ctx, idOf(args.UserID))
	return &userProfileOutput{core: outcome("userProfile", err), user: user}, nil
}

func (r *Resolver) EditProfile(ctx context.Context, args struct{ Input editProfileInput }) (*mutationOutput, error) {
	user, err := authorize(ctx, "editProfile")
	if err != nil {
		return nil, err
	}
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	_, err = r.svc.Users.EditProfile(ctx, user.ID, service.EditProfileInput{
		Email:    nonEmpty(args.Input.Email),
		Password: nonEmpty(args.Input.Password),
	})
	return &mutationOutput{outcome("editProfile", err)}, nil
}

func (r *Resolver) DeleteMyAccount(ctx context.Context) (*mutationOutput, error) {
	user, err := authorize(ctx, "deleteMyAccount")
	if err != nil {
		return nil, err
	}
	err = r.svc.Users.DeleteAccount(ctx, user.ID)
	return &mutationOutput{outcome("deleteMyAccount", err)}, nil
}

func (r *Resolver) VerifyEmail(ctx context.Context, args struct{ Input verifyEmailInput }) (*mutationOutput, error) {
	if err := validateInput(args.Input); err != nil {
		return nil, err
	}
	err := r.svc.Users.VerifyEmail(ctx, args.Input.Code)
	return &mutationOutput{outcome("verifyEmail", err)}, nil
}
