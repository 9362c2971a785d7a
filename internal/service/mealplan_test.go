package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/mealplanner-backend/internal/models"
)

func TestCreateMealPlanDefaultName(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "")
	require.NoError(t, err)

	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), plan.Name)
	assert.Equal(t, models.MealPlanStatusActive, plan.Status)
}

func TestAddMealServingsFallback(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	recipe := createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	// Explicit serving count sticks.
	plan, err = svc.AddMeal(context.Background(), plan.ID, user.ID, recipe.ID, 3)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 1)
	assert.Equal(t, 3, plan.Meals[0].Servings)

	// Zero falls back to the recipe's own serving count.
	plan, err = svc.AddMeal(context.Background(), plan.ID, user.ID, recipe.ID, 0)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 2)

	servings := []int{plan.Meals[0].Servings, plan.Meals[1].Servings}
	assert.Contains(t, servings, 8)
}

func TestAddMealToFinalizedPlan(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	recipe := createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "done")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), plan.ID, user.ID, models.MealPlanStatusInactive))

	_, err = svc.AddMeal(context.Background(), plan.ID, user.ID, recipe.ID, 2)
	assert.ErrorIs(t, err, ErrMealPlanFinalized)
}

func TestAddMealUnknownRecipe(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	_, err = svc.AddMeal(context.Background(), plan.ID, user.ID, user.ID, 2)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestRemoveMeal(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	recipe := createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	plan, err = svc.AddMeal(context.Background(), plan.ID, user.ID, recipe.ID, 2)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 1)

	plan, err = svc.RemoveMeal(context.Background(), plan.ID, plan.Meals[0].ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, plan.Meals)

	// Removing it again reports it missing.
	_, err = svc.RemoveMeal(context.Background(), plan.ID, user.ID, user.ID)
	assert.ErrorIs(t, err, ErrMealNotInPlan)
}

func TestAddRandomMealsRequiresEnoughRecipes(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	_, err = svc.AddRandomMeals(context.Background(), plan.ID, user.ID, 3)
	assert.ErrorIs(t, err, ErrNotEnoughRecipes)
}

func TestAddRandomMealsUsesDefaultServingSize(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	require.NoError(t, db.Create(&models.UserSettings{UserID: user.ID, DefaultServingSize: 6}).Error)

	createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	createTestRecipe(t, db, user.ID, "Soup", 4, flourPoundIngredient())
	createTestRecipe(t, db, user.ID, "Stew", 2, flourPoundIngredient())

	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	plan, err = svc.AddRandomMeals(context.Background(), plan.ID, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 2)

	// No duplicates, and every meal uses the default serving size.
	assert.NotEqual(t, plan.Meals[0].RecipeID, plan.Meals[1].RecipeID)
	for _, meal := range plan.Meals {
		assert.Equal(t, 6, meal.Servings)
	}
}

func TestDeleteMealPlanRemovesMeals(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewMealPlanService(db)

	recipe := createTestRecipe(t, db, user.ID, "Bread", 8, flourPoundIngredient())
	plan, err := svc.CreateMealPlan(context.Background(), user.ID, "week one")
	require.NoError(t, err)

	_, err = svc.AddMeal(context.Background(), plan.ID, user.ID, recipe.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMealPlan(context.Background(), plan.ID, user.ID))

	var count int64
	db.Model(&models.Meal{}).Where("meal_plan_id = ?", plan.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	_, err = svc.GetMealPlan(context.Background(), plan.ID, user.ID)
	assert.ErrorIs(t, err, ErrMealPlanNotFound)
}
