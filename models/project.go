package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project shown on the projects page
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Img         string    `json:"img" db:"img" gorm:"type:text;not null"`
	Link        string    `json:"link" db:"link" gorm:"type:text;not null"`
	Keywords    Keywords  `json:"keywords" db:"keywords" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
