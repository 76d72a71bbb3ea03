package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationRejected InvitationStatus = "REJECTED"
	InvitationExpired  InvitationStatus = "EXPIRED"
)

type Invitation struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	ShoppingListID uuid.UUID        `gorm:"type:uuid;not null;index" json:"shopping_list_id"`
	ShoppingList   ShoppingList     `gorm:"foreignKey:ShoppingListID" json:"shopping_list,omitempty"`
	SenderID       uuid.UUID        `gorm:"type:uuid;not null" json:"sender_id"`
	Sender         User             `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	RecipientEmail string           `gorm:"not null;size:255;index" json:"recipient_email"`
	RecipientID    *uuid.UUID       `gorm:"type:uuid" json:"recipient_id,omitempty"` // set once the email maps to a registered user
	InvitationCode string           `gorm:"uniqueIndex;not null;size:36" json:"invitation_code"`
	Status         InvitationStatus `gorm:"not null;size:10;default:PENDING" json:"status"`
	SentAt         time.Time        `gorm:"not null" json:"sent_at"`
	ExpiresAt      time.Time        `gorm:"not null" json:"expires_at"`
	AcceptedAt     *time.Time       `json:"accepted_at,omitempty"`
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type SendInvitationRequest struct {
	ShoppingListID  string          `json:"shopping_list_id" binding:"required"`
	RecipientEmail  string          `json:"recipient_email" binding:"required,email"`
	PermissionLevel PermissionLevel `json:"permission_level"`
}
