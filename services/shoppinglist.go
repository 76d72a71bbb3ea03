package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listeden-backend/database"
	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const accessibleListsTTL = 60 * time.Second

type ShoppingListService struct {
	DB *gorm.DB
}

func accessibleListsKey(userID uuid.UUID) string {
	return fmt.Sprintf("accessible_lists:%s", userID)
}

// accessibleListCacheKeys collects the cache keys of every user whose
// accessible-lists view includes the list: the owner plus all share holders.
func accessibleListCacheKeys(db *gorm.DB, listID uuid.UUID, ownerID uuid.UUID) []string {
	var sharedUserIDs []uuid.UUID
	db.Model(&models.ListShare{}).
		Where("shopping_list_id = ?", listID).
		Pluck("shared_user_id", &sharedUserIDs)

	keys := []string{accessibleListsKey(ownerID)}
	for _, uid := range sharedUserIDs {
		if uid != ownerID {
			keys = append(keys, accessibleListsKey(uid))
		}
	}
	return keys
}

// Create persists the list, then records an explicit ADMIN share for the
// owner. The owner check in the resolver never needs that row, but the UI
// lists it alongside the other shares.
func (s *ShoppingListService) Create(ctx context.Context, req models.CreateShoppingListRequest, ownerID uuid.UUID) (*models.ShoppingList, error) {
	var owner models.User
	if err := s.DB.WithContext(ctx).First(&owner, "id = ?", ownerID).Error; err != nil {
		return nil, fmt.Errorf("owner user %s: %w", ownerID, ErrNotFound)
	}

	list := models.ShoppingList{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     owner.ID,
		Archived:    false,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&list).Error; err != nil {
			return err
		}
		ownerShare := models.ListShare{
			ShoppingListID:  list.ID,
			SharedUserID:    owner.ID,
			PermissionLevel: models.PermissionAdmin,
		}
		return tx.Create(&ownerShare).Error
	})
	if err != nil {
		return nil, err
	}

	database.CacheDel(ctx, accessibleListsKey(ownerID))
	return &list, nil
}

// GetAccessible returns the union of lists the user owns and lists shared
// with the user. Order is unspecified.
func (s *ShoppingListService) GetAccessible(ctx context.Context, userID uuid.UUID) ([]models.ShoppingList, error) {
	if cached, ok := database.CacheGet(ctx, accessibleListsKey(userID)); ok {
		var lists []models.ShoppingList
		if err := json.Unmarshal([]byte(cached), &lists); err == nil {
			return lists, nil
		}
	}

	var user models.User
	if err := s.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	var lists []models.ShoppingList
	err := s.DB.WithContext(ctx).
		Distinct("shopping_lists.*").
		Joins("LEFT JOIN list_shares ON list_shares.shopping_list_id = shopping_lists.id").
		Where("shopping_lists.owner_id = ? OR list_shares.shared_user_id = ?", userID, userID).
		Find(&lists).Error
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(lists); err == nil {
		database.CacheSet(ctx, accessibleListsKey(userID), string(data), accessibleListsTTL)
	}
	return lists, nil
}

// GetByID requires view access.
func (s *ShoppingListService) GetByID(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := s.DB.WithContext(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("shopping list %s: %w", id, ErrNotFound)
	}

	perms := &PermissionService{DB: s.DB}
	if !perms.HasView(ctx, &list, requesterID) {
		return nil, fmt.Errorf("no view access to list %s: %w", id, ErrForbidden)
	}
	return &list, nil
}

func (s *ShoppingListService) Update(ctx context.Context, id uuid.UUID, req models.UpdateShoppingListRequest, requesterID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	var cacheKeys []string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&list, "id = ?", id).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", id, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, requesterID) {
			return fmt.Errorf("no admin access to list %s: %w", id, ErrForbidden)
		}

		if req.Name != nil {
			list.Name = *req.Name
		}
		if req.Description != nil {
			list.Description = *req.Description
		}
		// Archived always comes through, absent means false.
		list.Archived = req.Archived
		list.UpdatedAt = time.Now()

		// Share holders cache this list too, not just the owner.
		cacheKeys = accessibleListCacheKeys(tx, id, list.OwnerID)
		return tx.Save(&list).Error
	})
	if err != nil {
		return nil, err
	}

	database.CacheDel(ctx, cacheKeys...)
	return &list, nil
}

// Delete removes the list together with its items and shares in a single
// transaction, so a deleted list never leaves orphaned rows behind.
func (s *ShoppingListService) Delete(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) error {
	var cacheKeys []string

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", id).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", id, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasAdmin(ctx, &list, requesterID) {
			return fmt.Errorf("no admin access to list %s: %w", id, ErrForbidden)
		}

		// Collect before the shares are gone.
		cacheKeys = accessibleListCacheKeys(tx, id, list.OwnerID)

		if err := tx.Where("shopping_list_id = ?", id).Delete(&models.ListItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shopping_list_id = ?", id).Delete(&models.ListShare{}).Error; err != nil {
			return err
		}
		if err := tx.Where("shopping_list_id = ?", id).Delete(&models.Invitation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&list).Error
	})
	if err != nil {
		return err
	}

	database.CacheDel(ctx, cacheKeys...)
	return nil
}
