package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID    string `gorm:"type:uuid;primaryKey" json:"id"`
	Title string `gorm:"size:10;not null" json:"title"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:10;uniqueIndex;not null" json:"phone"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
