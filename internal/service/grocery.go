package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/units"
)

var (
	ErrGroceryListNotFound     = errors.New("grocery list not found")
	ErrGroceryListItemNotFound = errors.New("grocery list item not found")
)

// GroceryService builds and reads grocery lists. Aggregation itself is
// pure (internal/units); this service owns the transaction around it.
type GroceryService struct {
	db *gorm.DB
}

// NewGroceryService creates a new GroceryService instance
func NewGroceryService(db *gorm.DB) *GroceryService {
	return &GroceryService{db: db}
}

// CreateGroceryList aggregates a meal plan's ingredients into a grocery
// list. The list, its items, and the plan's transition to INACTIVE are
// written in a single transaction, so a reader never sees a partially
// populated list and an aggregation failure persists nothing.
func (s *GroceryService) CreateGroceryList(ctx context.Context, mealPlanID, userID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		// Meals aggregate in the order they were added, which decides
		// the casing and position of merged items.
		err := tx.Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.created_at") }).
			Preload("Meals.Recipe.Ingredients").
			First(&plan, "id = ? AND user_id = ?", mealPlanID, userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return err
		}

		aggregated, err := units.Aggregate(mealsForAggregation(&plan))
		if err != nil {
			return err
		}

		list = models.GroceryList{
			MealPlanID: plan.ID,
			UserID:     userID,
			Status:     models.GroceryListStatusActive,
		}
		if err := tx.Create(&list).Error; err != nil {
			return err
		}

		if len(aggregated) > 0 {
			items := make([]models.GroceryListItem, len(aggregated))
			for i, item := range aggregated {
				items[i] = models.GroceryListItem{
					GroceryListID: list.ID,
					Name:          item.Name,
					Type:          item.Type,
					Kelevens:      item.Kelevens,
					Status:        models.GroceryListItemStatusActive,
				}
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			list.Items = items
		}

		return tx.Model(&models.MealPlan{}).
			Where("id = ?", plan.ID).
			Update("status", models.MealPlanStatusInactive).Error
	})
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// GetGroceryList retrieves the grocery list for a meal plan along with
// the number of items not yet checked off.
func (s *GroceryService) GetGroceryList(ctx context.Context, mealPlanID, userID uuid.UUID) (*models.GroceryList, int64, error) {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		First(&list, "meal_plan_id = ? AND user_id = ?", mealPlanID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrGroceryListNotFound
		}
		return nil, 0, err
	}

	var remaining int64
	err = s.db.WithContext(ctx).Model(&models.GroceryListItem{}).
		Where("grocery_list_id = ? AND status = ?", list.ID, models.GroceryListItemStatusActive).
		Count(&remaining).Error
	if err != nil {
		return nil, 0, err
	}

	return &list, remaining, nil
}

// GetGroceryListWithItems retrieves the grocery list for a meal plan
// with all of its items.
func (s *GroceryService) GetGroceryListWithItems(ctx context.Context, mealPlanID, userID uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	err := s.db.WithContext(ctx).
		Preload("Items").
		First(&list, "meal_plan_id = ? AND user_id = ?", mealPlanID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroceryListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// ToggleItemStatus flips one grocery list item between checked off and
// not, returning the updated item.
func (s *GroceryService) ToggleItemStatus(ctx context.Context, listID, itemID, userID uuid.UUID) (*models.GroceryListItem, error) {
	var item models.GroceryListItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.GroceryList
		if err := tx.First(&list, "id = ? AND user_id = ?", listID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroceryListNotFound
			}
			return err
		}

		if err := tx.First(&item, "id = ? AND grocery_list_id = ?", itemID, listID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroceryListItemNotFound
			}
			return err
		}

		if item.Status == models.GroceryListItemStatusActive {
			item.Status = models.GroceryListItemStatusInactive
		} else {
			item.Status = models.GroceryListItemStatusActive
		}
		return tx.Model(&item).Update("status", item.Status).Error
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// mealsForAggregation projects a loaded meal plan onto the pure
// aggregation input types.
func mealsForAggregation(plan *models.MealPlan) []units.Meal {
	meals := make([]units.Meal, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		ingredients := make([]units.Ingredient, 0, len(meal.Recipe.Ingredients))
		for _, ing := range meal.Recipe.Ingredients {
			ingredients = append(ingredients, units.Ingredient{
				Name:   ing.Name,
				Amount: ing.Amount,
				Type:   ing.Type,
				Unit:   ing.Unit,
			})
		}
		meals = append(meals, units.Meal{
			RecipeServings: meal.Recipe.Servings,
			Servings:       meal.Servings,
			Ingredients:    ingredients,
		})
	}
	return meals
}
