package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListItem struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ShoppingListID uuid.UUID    `gorm:"type:uuid;not null;index" json:"shopping_list_id"`
	ShoppingList   ShoppingList `gorm:"foreignKey:ShoppingListID" json:"-"`
	ProductName    string       `gorm:"not null;size:255" json:"product_name"`
	Quantity       float64      `gorm:"not null;default:1" json:"quantity"`
	Unit           string       `gorm:"size:30" json:"unit,omitempty"` // e.g. "kg", "pcs", "l"
	Purchased      bool         `gorm:"not null;default:false" json:"purchased"`
	Notes          string       `json:"notes,omitempty"`
	Priority       int          `json:"priority"` // lower value = higher priority
	AddedByID      uuid.UUID    `gorm:"type:uuid" json:"added_by"`
	PurchasedByID  *uuid.UUID   `gorm:"type:uuid" json:"purchased_by,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (i *ListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Request structs
type AddListItemRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"gte=0"`
	Unit        string  `json:"unit"`
	Notes       string  `json:"notes"`
	Priority    int     `json:"priority"`
}

type UpdateListItemRequest struct {
	ProductName *string  `json:"product_name"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Notes       *string  `json:"notes"`
	Priority    *int     `json:"priority"`
	Purchased   *bool    `json:"purchased"`
}
