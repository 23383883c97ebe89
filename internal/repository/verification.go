package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/nubereats/backend/internal/models"
)

type verificationRepository struct {
	db *gorm.DB
}

func (r *verificationRepository) FindByCode(ctx context.Context, code string) (*models.Verification, error) {
	var v models.Verification
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *verificationRepository) Create(ctx context.Context, v *models.Verification) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *verificationRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Verification{}, id).Error)
}

func (r *verificationRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	return translate(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Verification{}).Error)
}
