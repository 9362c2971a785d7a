package api

import (
	"github.com/google/uuid"

	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/units"
)

type IngredientRequest struct {
	Name   string  `json:"name" binding:"required,max=100"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"required,oneof=COUNT VOLUME WEIGHT"`
	Unit   string  `json:"unit"`
}

type RecipeRequest struct {
	Name        string              `json:"name" binding:"required,max=50"`
	Description string              `json:"description" binding:"max=300"`
	PrepTime    string              `json:"prep_time"`
	CookTime    string              `json:"cook_time"`
	Servings    int                 `json:"servings" binding:"required,min=1"`
	Steps       []string            `json:"steps" binding:"required,min=1"`
	Notes       string              `json:"notes" binding:"max=500"`
	IsPublic    bool                `json:"is_public"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// ToModel converts the request into an unsaved recipe owned by userID
func (r *RecipeRequest) ToModel(userID uuid.UUID) *models.Recipe {
	recipe := &models.Recipe{
		Name:        r.Name,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Servings:    r.Servings,
		Steps:       r.Steps,
		Notes:       r.Notes,
		IsPublic:    r.IsPublic,
		UserID:      userID,
	}
	for _, ing := range r.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Type:   units.IngredientType(ing.Type),
			Unit:   units.Name(ing.Unit),
		})
	}
	return recipe
}

type CreateMealPlanRequest struct {
	Name string `json:"name" binding:"max=100"`
}

type AddMealRequest struct {
	RecipeID uuid.UUID `json:"recipe_id" binding:"required"`
	Servings int       `json:"servings" binding:"min=0"`
}

type AddRandomMealsRequest struct {
	NumberOfMeals int `json:"number_of_meals" binding:"required,min=1"`
}

type UpdateSettingsRequest struct {
	DefaultServingSize int `json:"default_serving_size" binding:"min=0"`
}

// GroceryListItemResponse is a grocery list item with its display
// amount, derived from the stored keleven quantity on every read.
type GroceryListItemResponse struct {
	ID     uuid.UUID            `json:"id"`
	Name   string               `json:"name"`
	Type   units.IngredientType `json:"type"`
	Status string               `json:"status"`
	Amount units.Amount         `json:"amount"`
}

// NewGroceryListItemResponse renders one stored item for display
func NewGroceryListItemResponse(item models.GroceryListItem) GroceryListItemResponse {
	return GroceryListItemResponse{
		ID:     item.ID,
		Name:   item.Name,
		Type:   item.Type,
		Status: item.Status,
		Amount: units.Render(item.Kelevens, item.Type),
	}
}
