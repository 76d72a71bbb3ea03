package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"listeden-backend/database"
	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitations expire seven days after they are sent.
const invitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	DB *gorm.DB
}

// Send issues a PENDING invitation for the list to the recipient email.
// The level parameter is accepted for API compatibility but is not recorded:
// acceptance always grants EDITOR.
func (s *InvitationService) Send(ctx context.Context, listID uuid.UUID, recipientEmail string, senderID uuid.UUID, level models.PermissionLevel) (*models.Invitation, error) {
	recipientEmail = strings.ToLower(strings.TrimSpace(recipientEmail))
	if recipientEmail == "" {
		return nil, fmt.Errorf("recipient email is required: %w", ErrInvalid)
	}

	var invitation models.Invitation
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", listID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
		}
		var sender models.User
		if err := tx.First(&sender, "id = ?", senderID).Error; err != nil {
			return fmt.Errorf("sender user %s: %w", senderID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, senderID) {
			return fmt.Errorf("no admin access to list %s: %w", list.ID, ErrForbidden)
		}

		// A registered recipient who can already reach the list needs no invitation.
		var recipient models.User
		var recipientID *uuid.UUID
		if err := tx.Where("LOWER(email) = ?", recipientEmail).First(&recipient).Error; err == nil {
			if perms.EffectiveLevel(ctx, &list, recipient.ID) != models.PermissionNone {
				return fmt.Errorf("user %s already has access to this list: %w", recipientEmail, ErrInvalid)
			}
			id := recipient.ID
			recipientID = &id
		}

		// No compound (email, list) lookup exists; scan the recipient's
		// PENDING invitations and match the list by hand.
		var pending []models.Invitation
		if err := tx.Where("recipient_email = ? AND status = ?", recipientEmail, models.InvitationPending).
			Find(&pending).Error; err != nil {
			return err
		}
		for _, inv := range pending {
			if inv.ShoppingListID == list.ID {
				return fmt.Errorf("pending invitation already exists for this email and list: %w", ErrInvalid)
			}
		}

		now := time.Now()
		invitation = models.Invitation{
			ShoppingListID: list.ID,
			SenderID:       sender.ID,
			RecipientEmail: recipientEmail,
			RecipientID:    recipientID,
			InvitationCode: uuid.NewString(),
			Status:         models.InvitationPending,
			SentAt:         now,
			ExpiresAt:      now.Add(invitationTTL),
		}
		return tx.Create(&invitation).Error
	})
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Accept transitions a PENDING invitation to ACCEPTED and creates an EDITOR
// share for the accepting user. Expiry is detected lazily here: an expired
// invitation is moved to EXPIRED as part of the failed attempt, there is no
// background sweep. That transition must survive the failed call, so it
// commits on its own instead of riding a rolled-back transaction.
func (s *InvitationService) Accept(ctx context.Context, code string, acceptingUserID uuid.UUID) (*models.Invitation, error) {
	db := s.DB.WithContext(ctx)

	var invitation models.Invitation
	if err := db.Where("invitation_code = ?", code).First(&invitation).Error; err != nil {
		return nil, fmt.Errorf("invalid invitation code: %w", ErrInvalid)
	}

	if invitation.Status != models.InvitationPending {
		return nil, fmt.Errorf("invitation is not pending: %w", ErrInvalid)
	}

	if invitation.ExpiresAt.Before(time.Now()) {
		if err := s.transition(db, &invitation, models.InvitationExpired); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("invitation has expired: %w", ErrInvalid)
	}

	var acceptingUser models.User
	if err := db.First(&acceptingUser, "id = ?", acceptingUserID).Error; err != nil {
		return nil, fmt.Errorf("accepting user %s: %w", acceptingUserID, ErrNotFound)
	}

	if !strings.EqualFold(invitation.RecipientEmail, acceptingUser.Email) {
		return nil, fmt.Errorf("invitation is not addressed to this user: %w", ErrForbidden)
	}

	var list models.ShoppingList
	if err := db.First(&list, "id = ?", invitation.ShoppingListID).Error; err != nil {
		return nil, fmt.Errorf("shopping list %s: %w", invitation.ShoppingListID, ErrNotFound)
	}

	perms := &PermissionService{DB: s.DB}
	if perms.EffectiveLevel(ctx, &list, acceptingUser.ID) != models.PermissionNone {
		if err := s.transition(db, &invitation, models.InvitationRejected); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("user %s already has access to this list: %w", acceptingUser.Email, ErrInvalid)
	}

	// Status change and share creation commit together. The PENDING guard in
	// the WHERE clause makes sure two concurrent accepts of the same code can
	// never both create a share.
	now := time.Now()
	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Invitation{}).
			Where("id = ? AND status = ?", invitation.ID, models.InvitationPending).
			Updates(map[string]interface{}{
				"status":       models.InvitationAccepted,
				"accepted_at":  now,
				"recipient_id": acceptingUser.ID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("invitation is not pending: %w", ErrInvalid)
		}

		share := models.ListShare{
			ShoppingListID:  list.ID,
			SharedUserID:    acceptingUser.ID,
			PermissionLevel: models.PermissionEditor,
		}
		return tx.Create(&share).Error
	})
	if err != nil {
		return nil, err
	}

	invitation.Status = models.InvitationAccepted
	invitation.AcceptedAt = &now
	invitation.RecipientID = &acceptingUser.ID

	database.CacheDel(ctx, accessibleListsKey(acceptingUserID))
	return &invitation, nil
}

func (s *InvitationService) Reject(ctx context.Context, code string, rejectingUserID uuid.UUID) (*models.Invitation, error) {
	db := s.DB.WithContext(ctx)

	var invitation models.Invitation
	if err := db.Where("invitation_code = ?", code).First(&invitation).Error; err != nil {
		return nil, fmt.Errorf("invalid invitation code: %w", ErrInvalid)
	}

	if invitation.Status != models.InvitationPending {
		return nil, fmt.Errorf("invitation is not pending: %w", ErrInvalid)
	}

	var rejectingUser models.User
	if err := db.First(&rejectingUser, "id = ?", rejectingUserID).Error; err != nil {
		return nil, fmt.Errorf("rejecting user %s: %w", rejectingUserID, ErrNotFound)
	}

	if !strings.EqualFold(invitation.RecipientEmail, rejectingUser.Email) {
		return nil, fmt.Errorf("invitation is not addressed to this user: %w", ErrForbidden)
	}

	if err := s.transition(db, &invitation, models.InvitationRejected); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Delete removes an invitation. Only the original sender or a list admin may
// do so.
func (s *InvitationService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invitation models.Invitation
		if err := tx.First(&invitation, "id = ?", id).Error; err != nil {
			return fmt.Errorf("invitation %s: %w", id, ErrNotFound)
		}

		if invitation.SenderID != requesterID {
			var list models.ShoppingList
			if err := tx.First(&list, "id = ?", invitation.ShoppingListID).Error; err != nil {
				return fmt.Errorf("shopping list %s: %w", invitation.ShoppingListID, ErrNotFound)
			}
			perms := &PermissionService{DB: tx}
			if !perms.HasAdmin(ctx, &list, requesterID) {
				return fmt.Errorf("no permission to delete invitation %s: %w", id, ErrForbidden)
			}
		}

		return tx.Delete(&invitation).Error
	})
}

// PendingForUser returns PENDING invitations linked to the user. Invitations
// addressed only by email stay invisible here until a recipient user is
// attached.
func (s *InvitationService) PendingForUser(ctx context.Context, userID uuid.UUID) ([]models.Invitation, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	var invitations []models.Invitation
	err := s.DB.WithContext(ctx).
		Preload("ShoppingList").
		Preload("Sender").
		Where("recipient_id = ? AND status = ?", userID, models.InvitationPending).
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// transition moves a PENDING invitation to a terminal state. The status guard
// in the WHERE clause keeps concurrent transitions from double-firing.
func (s *InvitationService) transition(db *gorm.DB, invitation *models.Invitation, to models.InvitationStatus) error {
	res := db.Model(&models.Invitation{}).
		Where("id = ? AND status = ?", invitation.ID, models.InvitationPending).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("invitation is not pending: %w", ErrInvalid)
	}
	invitation.Status = to
	return nil
}
