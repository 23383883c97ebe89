package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/nubereats/backend/internal/models"
	"github.com/pageza/nubereats/backend/internal/repository"
)

// VerificationService issues and consumes single-use email verification codes.
// Codes do not expire.
type VerificationService struct {
	store repository.Store
}

func NewVerificationService(store repository.Store) *VerificationService {
	return &VerificationService{store: store}
}

// Create replaces any pending verification of user with a fresh code.
func (s *VerificationService) Create(ctx context.Context, user *models.User) (string, error) {
	return issueVerification(ctx, s.store, user.ID)
}

// Consume marks the code's user as verified and deletes the code. An unknown
// or already used code fails with MsgVerificationNotFound.
func (s *VerificationService) Consume(ctx context.Context, code string) error {
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		v, err := tx.Verifications().FindByCode(ctx, code)
		if err != nil {
			return err
		}
		user, err := tx.Users().FindByID(ctx, v.UserID)
		if err != nil {
			return err
		}
		user.Verified = true
		if err := tx.Users().Save(ctx, user); err != nil {
			return err
		}
		return tx.Verifications().Delete(ctx, v.ID)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(MsgVerificationNotFound)
	default:
		return internal(MsgVerifyEmailFailed, err)
	}
}

// issueVerification runs against store so callers can include it in their
// own transaction.
func issueVerification(ctx context.Context, store repository.Store, userID uint) (string, error) {
	if err := store.Verifications().DeleteByUserID(ctx, userID); err != nil {
		return "", fmt.Errorf("failed to clear previous verification: %w", err)
	}
	v := &models.Verification{UserID: userID}
	if err := store.Verifications().Create(ctx, v); err != nil {
		return "", fmt.Errorf("failed to create verification: %w", err)
	}
	return v.Code, nil
}
