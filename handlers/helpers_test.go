package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"listeden-backend/config"
	"listeden-backend/database"
	"listeden-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest points the package-level DB at a fresh in-memory database
// and fills in the config the handlers read.
func setupHandlerTest(t *testing.T) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret", AppName: "Listeden"}

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
	database.DB = db
}

func jsonContext(t *testing.T, w *httptest.ResponseRecorder, method string, body interface{}) *gin.Context {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func usernamePtr(s string) *string { return &s }
