package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkful/mealplanner-backend/internal/middleware"
	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/service"
	"github.com/forkful/mealplanner-backend/internal/units"
)

type GroceryListHandler struct {
	grocery *service.GroceryService
}

func NewGroceryListHandler(grocery *service.GroceryService) *GroceryListHandler {
	return &GroceryListHandler{grocery: grocery}
}

// CreateGroceryList generates the grocery list for a meal plan
func (h *GroceryListHandler) CreateGroceryList(c *gin.Context) {
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

	list, err := h.grocery.CreateGroceryList(c.Request.Context(), planID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal plan not found"})
		case errors.Is(err, units.ErrInvalidUnit), errors.Is(err, units.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create grocery list"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"grocery_list": groceryListResponse(list)})
}

// GetGroceryList returns a meal plan's grocery list with rendered
// amounts, plus how many items are still unchecked.
func (h *GroceryListHandler) GetGroceryList(c *gin.Context) {
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

	list, err := h.grocery.GetGroceryListWithItems(c.Request.Context(), planID, userID)
	if err != nil {
		if errors.Is(err, service.ErrGroceryListNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Grocery list not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch grocery list"})
		return
	}

	remaining := 0
	for _, item := range list.Items {
		if item.Status == models.GroceryListItemStatusActive {
			remaining++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"grocery_list":    groceryListResponse(list),
		"items_remaining": remaining,
	})
}

// ToggleItem checks a grocery list item off, or back on
func (h *GroceryListHandler) ToggleItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grocery list id"})
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid grocery list item id"})
		return
	}

	item, err := h.grocery.ToggleItemStatus(c.Request.Context(), listID, itemID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGroceryListNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Grocery list not found"})
		case errors.Is(err, service.ErrGroceryListItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Grocery list item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": NewGroceryListItemResponse(*item)})
}

func groceryListResponse(list *models.GroceryList) gin.H {
	items := make([]GroceryListItemResponse, len(list.Items))
	for i, item := range list.Items {
		items[i] = NewGroceryListItemResponse(item)
	}

	return gin.H{
		"id":           list.ID,
		"meal_plan_id": list.MealPlanID,
		"status":       list.Status,
		"created_at":   list.CreatedAt,
		"updated_at":   list.UpdatedAt,
		"items":        items,
	}
}
