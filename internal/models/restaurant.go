package models

import "time"

type Restaurant struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `gorm:"not null" json:"name"`
	Address    string    `gorm:"not null" json:"address"`
	CoverImage string    `gorm:"not null" json:"cover_image"`
	OwnerID    uint      `gorm:"index;not null" json:"owner_id"`
	CategoryID *uint     `gorm:"index" json:"category_id"`
}
