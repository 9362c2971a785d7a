package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/forkful/mealplanner-backend/internal/database"
	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/units"
)

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:         "Test User",
		Email:        uuid.New().String() + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

// createTestRecipe stores a recipe through the service so ingredient
// kelevens are computed the same way production saves do.
func createTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, servings int, ingredients []models.Ingredient) *models.Recipe {
	t.Helper()

	recipe, err := NewRecipeService(db).CreateRecipe(context.Background(), &models.Recipe{
		Name:        name,
		Description: "test recipe",
		Servings:    servings,
		Steps:       models.JSONBStringArray{"step one"},
		UserID:      userID,
		Ingredients: ingredients,
	})
	require.NoError(t, err)
	return recipe
}

func flourPoundIngredient() []models.Ingredient {
	return []models.Ingredient{
		{Name: "flour", Amount: 1, Type: units.TypeWeight, Unit: units.Pound},
	}
}
