package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Verification is a pending email verification. A user has at most one.
type Verification struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
}

func (v *Verification) BeforeCreate(tx *gorm.DB) error {
	if v.Code == "" {
		v.Code = uuid.NewString()
	}
	return nil
}
