package services

import (
	"context"
	"fmt"

	"listeden-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemService manages the standalone product catalog. Catalog entries are not
// tied to any list, so there are no permission checks beyond authentication.
type ItemService struct {
	DB *gorm.DB
}

func (s *ItemService) GetAll(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.DB.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return &item, nil
}

func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	item := models.Item{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	var item models.Item
	if err := s.DB.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return s.DB.WithContext(ctx).Delete(&item).Error
}
