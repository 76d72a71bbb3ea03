package services

import (
	"context"
	"fmt"
	"time"

	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListItemService struct {
	DB *gorm.DB
}

func (s *ListItemService) ListItems(ctx context.Context, listID uuid.UUID, requesterID uuid.UUID) ([]models.ListItem, error) {
	var list models.ShoppingList
	if err := s.DB.WithContext(ctx).First(&list, "id = ?", listID).Error; err != nil {
		return nil, fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
	}

	perms := &PermissionService{DB: s.DB}
	if !perms.HasView(ctx, &list, requesterID) {
		return nil, fmt.Errorf("no view access to list %s: %w", listID, ErrForbidden)
	}

	var items []models.ListItem
	if err := s.DB.WithContext(ctx).Where("shopping_list_id = ?", listID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem forces addedBy to the requester and starts every item unpurchased,
// whatever the caller sent.
func (s *ListItemService) AddItem(ctx context.Context, listID uuid.UUID, req models.AddListItemRequest, requesterID uuid.UUID) (*models.ListItem, error) {
	var item models.ListItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", listID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", listID, ErrNotFound)
		}
		var requester models.User
		if err := tx.First(&requester, "id = ?", requesterID).Error; err != nil {
			return fmt.Errorf("user %s: %w", requesterID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasEdit(ctx, &list, requesterID) {
			return fmt.Errorf("no edit access to list %s: %w", listID, ErrForbidden)
		}

		item = models.ListItem{
			ShoppingListID: list.ID,
			ProductName:    req.ProductName,
			Quantity:       req.Quantity,
			Unit:           req.Unit,
			Notes:          req.Notes,
			Priority:       req.Priority,
			Purchased:      false,
			AddedByID:      requester.ID,
			PurchasedByID:  nil,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem applies a field-by-field patch. The purchased flag is only acted
// on when it differs from the stored value: flipping to true stamps the
// requester as purchaser, flipping back clears it, resending the current
// value leaves the purchaser untouched.
func (s *ListItemService) UpdateItem(ctx context.Context, itemID uuid.UUID, req models.UpdateListItemRequest, requesterID uuid.UUID) (*models.ListItem, error) {
	var item models.ListItem
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return fmt.Errorf("list item %s: %w", itemID, ErrNotFound)
		}
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", item.ShoppingListID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", item.ShoppingListID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasEdit(ctx, &list, requesterID) {
			return fmt.Errorf("no edit access to list %s: %w", list.ID, ErrForbidden)
		}

		if req.ProductName != nil {
			item.ProductName = *req.ProductName
		}
		if req.Quantity != nil {
			if *req.Quantity < 0 {
				return fmt.Errorf("quantity must not be negative: %w", ErrInvalid)
			}
			item.Quantity = *req.Quantity
		}
		if req.Unit != nil {
			item.Unit = *req.Unit
		}
		if req.Notes != nil {
			item.Notes = *req.Notes
		}
		if req.Priority != nil {
			item.Priority = *req.Priority
		}
		if req.Purchased != nil && *req.Purchased != item.Purchased {
			item.Purchased = *req.Purchased
			if item.Purchased {
				requester := requesterID
				item.PurchasedByID = &requester
			} else {
				item.PurchasedByID = nil
			}
		}
		item.UpdatedAt = time.Now()

		// Save writes every column, so a cleared purchased_by really becomes NULL.
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ListItemService) DeleteItem(ctx context.Context, itemID uuid.UUID, requesterID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.ListItem
		if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
			return fmt.Errorf("list item %s: %w", itemID, ErrNotFound)
		}
		var list models.ShoppingList
		if err := tx.First(&list, "id = ?", item.ShoppingListID).Error; err != nil {
			return fmt.Errorf("shopping list %s: %w", item.ShoppingListID, ErrNotFound)
		}

		perms := &PermissionService{DB: tx}
		if !perms.HasEdit(ctx, &list, requesterID) {
			return fmt.Errorf("no edit access to list %s: %w", list.ID, ErrForbidden)
		}

		return tx.Delete(&item).Error
	})
}
