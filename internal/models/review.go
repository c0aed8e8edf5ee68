package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	BookID string `gorm:"type:uuid;index;not null" json:"bookId"`

	ReviewedAt string `gorm:"size:10" json:"reviewedAt"`
	ReviewedBy string `gorm:"size:100;not null" json:"reviewedBy"`
	Rating     int    `gorm:"not null" json:"rating"`
	Review     string `gorm:"size:1000;not null" json:"review"`

	IsDeleted bool `gorm:"default:false" json:"isDeleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
