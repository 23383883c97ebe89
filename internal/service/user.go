package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/repository"
)

type CreateAccountInput struct {
	Email    string
	Password string
	Role     models.UserRole
}

// EditProfileInput changes only the fields that are set.
type EditProfileInput struct {
	Email    *string
	Password *string
}

// UserService handles accounts, credentials and email verification
type UserService struct {
	store         repository.Store
	tokens        *TokenService
	verifications *VerificationService
	mailer        Mailer
	log           *zap.Logger
}

func NewUserService(store repository.Store, tokens *TokenService, mailer Mailer, log *zap.Logger) *UserService {
	return &UserService{
		store:         store,
		tokens:        tokens,
		verifications: NewVerificationService(store),
		mailer:        mailer,
		log:           log,
	}
}

// CreateAccount registers a user and sends the first verification code.
// requester is nil for anonymous signups.
func (s *UserService) CreateAccount(ctx context.Context, requester *models.User, in CreateAccountInput) (*models.User, error) {
	if err := assertCanCreateAccount(requester, in.Role); err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	exists, err := s.store.Users().ExistsByEmail(ctx, email)
	if err != nil {
		s.log.Error("failed to check email", zap.Error(err))
		return nil, internal(MsgCreateAccountFailed, err)
	}
	if exists {
		return nil, conflict(MsgUserExists)
	}

	user := &models.User{Email: email, Password: in.Password, Role: in.Role}
	var code string
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		c, err := issueVerification(ctx, tx, user.ID)
		if err != nil {
			return err
		}
		code = c
		return nil
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflict(MsgUserExists)
	}
	if err != nil {
		s.log.Error("failed to create account", zap.String("email", email), zap.Error(err))
		return nil, internal(MsgCreateAccountFailed, err)
	}

	s.mailer.SendVerificationEmail(user.Email, code)
	return user, nil
}

// Login checks credentials and returns a signed token
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.Users().FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return "", notFound(MsgUserNotFound)
	}
	if err != nil {
		s.log.Error("failed to load user for login", zap.Error(err))
		return "", internal(MsgLoginFailed, err)
	}

	ok, err := user.CheckPassword(password)
	if err != nil {
		s.log.Error("failed to check password", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", internal(MsgLoginFailed, err)
	}
	if !ok {
		return "", invalidCredentials(MsgWrongPassword)
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		s.log.Error("failed to sign token", zap.Error(err))
		return "", internal(MsgLoginFailed, err)
	}
	return token, nil
}

// FindByID loads a user profile. Every failure reads as MsgUserNotFound.
func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error("failed to load user", zap.Uint("user_id", id), zap.Error(err))
		}
		return nil, notFound(MsgUserNotFound)
	}
	return user, nil
}

// Authenticate resolves a bearer token into its user
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	id, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// EditProfile applies in to the user. A changed email resets Verified and
// sends a new code; a password-only change does neither.
func (s *UserService) EditProfile(ctx context.Context, userID uint, in EditProfileInput) (*models.User, error) {
	var (
		user *models.User
		code string
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		user, err = tx.Users().FindByID(ctx, userID)
		if err != nil {
			return err
		}

		if in.Email != nil {
			email := normalizeEmail(*in.Email)
			if email != user.Email {
				taken, err := tx.Users().ExistsByEmail(ctx, email)
				if err != nil {
					return err
				}
				if taken {
					return conflict(MsgUserExists)
				}
				user.Email = email
				user.Verified = false
				if code, err = issueVerification(ctx, tx, user.ID); err != nil {
					return err
				}
			}
		}
		if in.Password != nil && *in.Password != "" {
			user.Password = *in.Password
		}
		return tx.Users().Save(ctx, user)
	})

	var serr *Error
	switch {
	case err == nil:
	case errors.As(err, &serr):
		return nil, serr
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFound(MsgUserNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return nil, conflict(MsgUserExists)
	default:
		s.log.Error("failed to update profile", zap.Uint("user_id", userID), zap.Error(err))
		return nil, internal(MsgUpdateProfileFailed, err)
	}

	if code != "" {
		s.mailer.SendVerificationEmail(user.Email, code)
	}
	return user, nil
}

// DeleteAccount removes the user with everything it owns
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.store.Users().Delete(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(MsgUserNotFound)
	}
	if err != nil {
		s.log.Error("failed to delete account", zap.Uint("user_id", userID), zap.Error(err))
		return internal(MsgDeleteAccountFailed, err)
	}
	return nil
}

// VerifyEmail consumes a verification code
func (s *UserService) VerifyEmail(ctx context.Context, code string) error {
	err := s.verifications.Consume(ctx, code)
	if err != nil && KindOf(err) == KindInternal {
		s.log.Error("failed to verify email", zap.Error(err))
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
