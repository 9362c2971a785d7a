package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/mealplanner-backend/internal/api"
	"github.com/forkful/mealplanner-backend/internal/database"
	"github.com/forkful/mealplanner-backend/internal/router"
	"github.com/forkful/mealplanner-backend/internal/service"
)

const testJWTSecret = "test-secret-key-for-jwt-tokens"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

// newTestEnv wires the full HTTP stack against an in-memory database
// with rate limiting and image storage disabled.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	authService := service.NewAuthService(db, testJWTSecret)
	recipeService := service.NewRecipeService(db)
	mealPlanService := service.NewMealPlanService(db)
	groceryService := service.NewGroceryService(db)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService, nil),
		api.NewMealPlanHandler(mealPlanService),
		api.NewGroceryListHandler(groceryService),
		authService,
		nil,
		nil,
	)

	return &testEnv{router: engine, db: db, auth: authService}
}

func (e *testEnv) registerUser(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	token, err := e.auth.Register(context.Background(), "Test User", email, "password123")
	require.NoError(t, err)

	claims, err := e.auth.ValidateToken(token)
	require.NoError(t, err)
	return claims.UserID, token
}

// request performs an authenticated JSON request against the router.
func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
