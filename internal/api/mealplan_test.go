package api_test

import (
	"net/http"
	"testing"

	"github.com/forkful/mealplanner-backend/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanRoutes(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "planner@example.com")

	w := env.request(t, http.MethodPost, "/api/v1/recipes", token, pancakeRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	recipeID := decodeBody(t, w)["recipe"].(map[string]interface{})["id"].(string)

	w = env.request(t, http.MethodPost, "/api/v1/mealplans", token, api.CreateMealPlanRequest{Name: "this week"})
	require.Equal(t, http.StatusCreated, w.Code)
	plan := decodeBody(t, w)["meal_plan"].(map[string]interface{})
	planID := plan["id"].(string)
	assert.Equal(t, "ACTIVE", plan["status"])

	w = env.request(t, http.MethodPost, "/api/v1/mealplans/"+planID+"/meals", token, map[string]interface{}{
		"recipe_id": recipeID,
		"servings":  2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	meals := decodeBody(t, w)["meal_plan"].(map[string]interface{})["meals"].([]interface{})
	require.Len(t, meals, 1)
	mealID := meals[0].(map[string]interface{})["id"].(string)

	w = env.request(t, http.MethodGet, "/api/v1/mealplans", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["meal_plans"], 1)

	w = env.request(t, http.MethodDelete, "/api/v1/mealplans/"+planID+"/meals/"+mealID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	meals = decodeBody(t, w)["meal_plan"].(map[string]interface{})["meals"].([]interface{})
	assert.Empty(t, meals)

	w = env.request(t, http.MethodDelete, "/api/v1/mealplans/"+planID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/mealplans/"+planID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddRandomMealsRoute(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerUser(t, "planner@example.com")

	w := env.request(t, http.MethodPost, "/api/v1/mealplans", token, api.CreateMealPlanRequest{})
	require.Equal(t, http.StatusCreated, w.Code)
	planID := decodeBody(t, w)["meal_plan"].(map[string]interface{})["id"].(string)

	// Not enough recipes in the cookbook yet.
	w = env.request(t, http.MethodPost, "/api/v1/mealplans/"+planID+"/meals/random", token, api.AddRandomMealsRequest{NumberOfMeals: 2})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, name := range []string{"Pancakes", "Waffles"} {
		req := pancakeRequest()
		req.Name = name
		w = env.request(t, http.MethodPost, "/api/v1/recipes", token, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = env.request(t, http.MethodPost, "/api/v1/mealplans/"+planID+"/meals/random", token, api.AddRandomMealsRequest{NumberOfMeals: 2})
	require.Equal(t, http.StatusOK, w.Code)
	meals := decodeBody(t, w)["meal_plan"].(map[string]interface{})["meals"].([]interface{})
	assert.Len(t, meals, 2)
}
