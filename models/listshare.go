package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PermissionLevel string

const (
	PermissionNone   PermissionLevel = "NONE" // never persisted, resolver result only
	PermissionViewer PermissionLevel = "VIEWER"
	PermissionEditor PermissionLevel = "EDITOR"
	PermissionAdmin  PermissionLevel = "ADMIN"
)

func (p PermissionLevel) Valid() bool {
	switch p {
	case PermissionViewer, PermissionEditor, PermissionAdmin:
		return true
	}
	return false
}

type ListShare struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ShoppingListID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_list_shared_user" json:"shopping_list_id"`
	ShoppingList    ShoppingList    `gorm:"foreignKey:ShoppingListID" json:"-"`
	SharedUserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_list_shared_user" json:"shared_user_id"`
	SharedUser      User            `gorm:"foreignKey:SharedUserID" json:"shared_user,omitempty"`
	PermissionLevel PermissionLevel `gorm:"not null;size:10" json:"permission_level"`
	SharedAt        time.Time       `gorm:"autoCreateTime" json:"shared_at"`
}

func (s *ListShare) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateListShareRequest struct {
	UserID          string          `json:"user_id" binding:"required"`
	PermissionLevel PermissionLevel `json:"permission_level" binding:"required"`
}

type UpdateListShareRequest struct {
	PermissionLevel PermissionLevel `json:"permission_level" binding:"required"`
}
