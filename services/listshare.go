package services

import (
	"context"
	"fmt"

	"listeden-backend/database"
	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListShareService struct {
	DB *gorm.DB
}

// ListForList returns every share of the list, the owner's bootstrap share
// included. Access filtering is the caller's concern here.
func (s *ListShareService) ListForList(ctx context.Context, listID uuid.UUID) ([]models.ListShare, error) {
	var list models.ShoppingList
	if err := s.DB.WithContext(ctx).First(&list, "id = ?", listID).Error; err != nil {
		return nil, fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
	}

	var shares []models.ListShare
	err := s.DB.WithContext(ctx).
		Preload("SharedUser").
		Where("shopping_list_id = ?", listID).
		Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (s *ListShareService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ListShare, error) {
	var shares []models.ListShare
	err := s.DB.WithContext(ctx).Where("shared_user_id = ?", userID).Find(&shares).Error
	if err != nil {
		return nil, err
	}
	return shares, nil
}

func (s *ListShareService) Create(ctx context.Context, listID uuid.UUID, targetUserID uuid.UUID, level models.PermissionLevel, requesterID uuid.UUID) (*models.ListShare, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("unknown permission level %q: %w", level, ErrInvalid)
	}

	var share models.ListShare
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", listID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
		}
		var target models.User
		if err := tx.First(&target, "id = ?", targetUserID).Error; err != nil {
			return fmt.Errorf("user %s: %w", targetUserID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, requesterID) {
			return fmt.Errorf("no admin access to list %s: %w", listID, ErrForbidden)
		}

		if list.OwnerID == targetUserID {
			return fmt.Errorf("owner already has admin access: %w", ErrInvalid)
		}

		var existing models.ListShare
		err := tx.Where("shopping_list_id = ? AND shared_user_id = ?", listID, targetUserID).
			First(&existing).Error
		if err == nil {
			return fmt.Errorf("list already shared with this user: %w", ErrInvalid)
		}

		share = models.ListShare{
			ShoppingListID:  list.ID,
			SharedUserID:    target.ID,
			PermissionLevel: level,
		}
		return tx.Create(&share).Error
	})
	if err != nil {
		return nil, err
	}

	database.CacheDel(ctx, accessibleListsKey(targetUserID))
	return &share, nil
}

func (s *ListShareService) Update(ctx context.Context, shareID uuid.UUID, newLevel models.PermissionLevel, requesterID uuid.UUID) (*models.ListShare, error) {
	if !newLevel.Valid() {
		return nil, fmt.Errorf("unknown permission level %q: %w", newLevel, ErrInvalid)
	}

	var share models.ListShare
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&share, "id = ?", shareID).Error; err != nil {
			return fmt.Errorf("list share %s: %w", shareID, ErrNotFound)
		}
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", share.ShoppingListID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", share.ShoppingListID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, requesterID) {
			return fmt.Errorf("no admin access to list %s: %w", list.ID, ErrForbidden)
		}

		share.PermissionLevel = newLevel
		return tx.Save(&share).Error
	})
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// Delete revokes a share. The owner's bootstrap share can never be removed.
func (s *ListShareService) Delete(ctx context.Context, shareID uuid.UUID, requesterID uuid.UUID) error {
	var sharedUserID uuid.UUID
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var share models.ListShare
		if err := tx.First(&share, "id = ?", shareID).Error; err != nil {
			return fmt.Errorf("list share %s: %w", shareID, ErrNotFound)
		}
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", share.ShoppingListID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", share.ShoppingListID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, requesterID) {
			return fmt.Errorf("no admin access to list %s: %w", list.ID, ErrForbidden)
		}

		if list.OwnerID == share.SharedUserID {
			return fmt.Errorf("cannot delete the owner's share: %w", ErrInvalid)
		}

		sharedUserID = share.SharedUserID
		return tx.Delete(&share).Error
	})
	if err != nil {
		return err
	}

	database.CacheDel(ctx, accessibleListsKey(sharedUserID))
	return nil
}
