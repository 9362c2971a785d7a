package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/mealplanner-backend/internal/middleware"
	"github.com/forkful/mealplanner-backend/internal/service"
)

type MealPlanHandler struct {
	plans *service.MealPlanService
}

func NewMealPlanHandler(plans *service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{plans: plans}
}

func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	plans, err := h.plans.ListMealPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plans": plans})
}

func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.CreateMealPlan(c.Request.Context(), userID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal plan"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	plan, err := h.plans.GetMealPlan(c.Request.Context(), planID, userID)
	if err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	if err := h.plans.DeleteMealPlan(c.Request.Context(), planID, userID); err != nil {
		if errors.Is(err, service.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete meal plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Meal plan deleted successfully",
		"id":      planID,
	})
}

func (h *MealPlanHandler) AddMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	var req AddMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.AddMeal(c.Request.Context(), planID, userID, req.RecipeID, req.Servings)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		case errors.Is(err, service.ErrMealPlanFinalized):
			c.JSON(http.StatusBadRequest, gin.H{"error": "meal plan is no longer active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add meal"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

func (h *MealPlanHandler) RemoveMeal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	mealID, err := uuid.Parse(c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	plan, err := h.plans.RemoveMeal(c.Request.Context(), planID, mealID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		case errors.Is(err, service.ErrMealNotInPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This meal is not in your meal plan"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove meal"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

// AddRandomMeals fills a plan with random recipes from the user's cookbook
func (h *MealPlanHandler) AddRandomMeals(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal plan id"})
		return
	}

	var req AddRandomMealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.plans.AddRandomMeals(c.Request.Context(), planID, userID, req.NumberOfMeals)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		case errors.Is(err, service.ErrNotEnoughRecipes):
			c.JSON(http.StatusBadRequest, gin.H{"error": "You do not have enough recipes in your cookbook to add this many meals"})
		case errors.Is(err, service.ErrMealPlanFinalized):
			c.JSON(http.StatusBadRequest, gin.H{"error": "meal plan is no longer active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add meals"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}
