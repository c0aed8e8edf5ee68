package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Book struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	Title   string `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Excerpt string `gorm:"size:500;not null" json:"excerpt"`
	UserID  string `gorm:"type:uuid;index;not null" json:"userId"`
	ISBN    string `gorm:"column:isbn;size:20;uniqueIndex;not null" json:"ISBN"`

	Category    string `gorm:"size:50;not null" json:"category"`
	Subcategory string `gorm:"size:50;not null" json:"subcategory"`

	// Date string in YYYY-MM-DD (or YYYY/MM/DD) form, not a timestamp.
	ReleasedAt string `gorm:"size:10" json:"releasedAt"`

	// Display-only counter, recomputed whenever the book is read with
	// its reviews.
	Reviews int `gorm:"default:0" json:"reviews"`

	IsDeleted bool       `gorm:"default:false" json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
