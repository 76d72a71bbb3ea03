package services

import (
	"context"

	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionService computes the effective permission level a user has on a
// shopping list. Every manager delegates its access checks here so the
// owner-dominates rule lives in exactly one place.
type PermissionService struct {
	DB *gorm.DB
}

// EffectiveLevel returns ADMIN for the owner regardless of any share row,
// otherwise the level of the (list, user) share, otherwise NONE.
// Recomputed per call; no caching.
func (s *PermissionService) EffectiveLevel(ctx context.Context, list *models.ShoppingList, userID uuid.UUID) models.PermissionLevel {
	if list.OwnerID == userID {
		return models.PermissionAdmin
	}

	var share models.ListShare
	err := s.DB.WithContext(ctx).
		Where("shopping_list_id = ? AND shared_user_id = ?", list.ID, userID).
		First(&share).Error
	if err != nil {
		return models.PermissionNone
	}
	return share.PermissionLevel
}

func (s *PermissionService) HasView(ctx context.Context, list *models.ShoppingList, userID uuid.UUID) bool {
	switch s.EffectiveLevel(ctx, list, userID) {
	case models.PermissionViewer, models.PermissionEditor, models.PermissionAdmin:
		return true
	}
	return false
}

func (s *PermissionService) HasEdit(ctx context.Context, list *models.ShoppingList, userID uuid.UUID) bool {
	switch s.EffectiveLevel(ctx, list, userID) {
	case models.PermissionEditor, models.PermissionAdmin:
		return true
	}
	return false
}

func (s *PermissionService) HasAdmin(ctx context.Context, list *models.ShoppingList, userID uuid.UUID) bool {
	return s.EffectiveLevel(ctx, list, userID) == models.PermissionAdmin
}
