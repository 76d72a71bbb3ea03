package services

import (
	"context"
	"fmt"
	"testing"

	"listeden-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A uniquely named shared in-memory database keeps every pooled
	// connection pointed at the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.ShoppingList{},
		&models.ListItem{},
		&models.ListShare{},
		&models.Invitation{},
		&models.Item{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestList(t *testing.T, db *gorm.DB, name string, ownerID uuid.UUID) *models.ShoppingList {
	t.Helper()

	svc := &ShoppingListService{DB: db}
	list, err := svc.Create(context.Background(), models.CreateShoppingListRequest{Name: name}, ownerID)
	require.NoError(t, err)
	return list
}

func shareList(t *testing.T, db *gorm.DB, listID, userID uuid.UUID, level models.PermissionLevel) models.ListShare {
	t.Helper()

	share := models.ListShare{
		ShoppingListID:  listID,
		SharedUserID:    userID,
		PermissionLevel: level,
	}
	require.NoError(t, db.Create(&share).Error)
	return share
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }
