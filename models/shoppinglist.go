package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShoppingList struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Archived    bool      `gorm:"not null;default:false" json:"archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (l *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateShoppingListRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Archived has no absent representation: a PUT always carries a value for it
// and always overwrites, even when the client omits the field (zero value).
type UpdateShoppingListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Archived    bool    `json:"archived"`
}
