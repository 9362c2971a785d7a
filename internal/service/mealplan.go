package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/models"
)

var (
	ErrMealPlanNotFound  = errors.New("meal plan not found")
	ErrMealNotInPlan     = errors.New("meal is not in this meal plan")
	ErrNotEnoughRecipes  = errors.New("not enough recipes in cookbook to fill the meal plan")
	ErrMealPlanFinalized = errors.New("meal plan already has a grocery list")
)

// MealPlanService handles meal plan operations
type MealPlanService struct {
	db *gorm.DB
}

// NewMealPlanService creates a new MealPlanService instance
func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// CreateMealPlan creates an active meal plan. An empty name defaults to
// today's date.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, userID uuid.UUID, name string) (*models.MealPlan, error) {
	if name == "" {
		name = time.Now().UTC().Format("2006-01-02")
	}

	plan := models.MealPlan{
		Name:   name,
		Status: models.MealPlanStatusActive,
		UserID: userID,
	}
	if err := s.db.WithContext(ctx).Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetMealPlan retrieves a meal plan with its meals and their recipes
func (s *MealPlanService) GetMealPlan(ctx context.Context, id, userID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.created_at") }).
		Preload("Meals.Recipe").
		First(&plan, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// GetMealPlanWithIngredients retrieves a meal plan with each meal's
// recipe and full ingredient list, ready for grocery aggregation.
func (s *MealPlanService) GetMealPlanWithIngredients(ctx context.Context, id, userID uuid.UUID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB { return db.Order("meals.created_at") }).
		Preload("Meals.Recipe.Ingredients").
		First(&plan, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListMealPlans lists a user's meal plans, most recently updated first
func (s *MealPlanService) ListMealPlans(ctx context.Context, userID uuid.UUID) ([]*models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Preload("Meals").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	result := make([]*models.MealPlan, len(plans))
	for i := range plans {
		result[i] = &plans[i]
	}
	return result, nil
}

// AddMeal adds a recipe to a meal plan at the given serving count. A
// non-positive serving count falls back to the recipe's own.
func (s *MealPlanService) AddMeal(ctx context.Context, planID, userID, recipeID uuid.UUID, servings int) (*models.MealPlan, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		if err := tx.First(&plan, "id = ? AND user_id = ?", planID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return err
		}
		if plan.Status != models.MealPlanStatusActive {
			return ErrMealPlanFinalized
		}

		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ? AND (user_id = ? OR is_public = ?)", recipeID, userID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		if servings < 1 {
			servings = recipe.Servings
		}

		meal := models.Meal{
			MealPlanID: plan.ID,
			RecipeID:   recipe.ID,
			Servings:   servings,
			UserID:     userID,
		}
		if err := tx.Create(&meal).Error; err != nil {
			return err
		}

		// Touch the plan so list ordering reflects the change.
		return tx.Model(&plan).Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetMealPlan(ctx, planID, userID)
}

// RemoveMeal removes one meal from a meal plan
func (s *MealPlanService) RemoveMeal(ctx context.Context, planID, mealID, userID uuid.UUID) (*models.MealPlan, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		if err := tx.First(&plan, "id = ? AND user_id = ?", planID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return err
		}

		var meal models.Meal
		if err := tx.First(&meal, "id = ? AND meal_plan_id = ?", mealID, planID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealNotInPlan
			}
			return err
		}

		return tx.Delete(&meal).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetMealPlan(ctx, planID, userID)
}

// AddRandomMeals fills a meal plan with recipes picked at random from
// the user's cookbook, skipping recipes already planned. Serving counts
// come from the user's default serving size when set, otherwise from
// each recipe.
func (s *MealPlanService) AddRandomMeals(ctx context.Context, planID, userID uuid.UUID, count int) (*models.MealPlan, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		if err := tx.Preload("Meals").First(&plan, "id = ? AND user_id = ?", planID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return err
		}
		if plan.Status != models.MealPlanStatusActive {
			return ErrMealPlanFinalized
		}

		var total int64
		if err := tx.Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
			return err
		}
		if int(total) < count+len(plan.Meals) {
			return ErrNotEnoughRecipes
		}

		planned := make([]uuid.UUID, 0, len(plan.Meals))
		for _, meal := range plan.Meals {
			planned = append(planned, meal.RecipeID)
		}

		var settings models.UserSettings
		defaultServings := 0
		if err := tx.First(&settings, "user_id = ?", userID).Error; err == nil {
			defaultServings = settings.DefaultServingSize
		}

		var candidates []models.Recipe
		query := tx.Where("user_id = ?", userID)
		if len(planned) > 0 {
			query = query.Where("id NOT IN ?", planned)
		}
		if err := query.Find(&candidates).Error; err != nil {
			return err
		}
		if len(candidates) < count {
			return ErrNotEnoughRecipes
		}

		rand.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		for _, recipe := range candidates[:count] {
			servings := defaultServings
			if servings < 1 {
				servings = recipe.Servings
			}
			meal := models.Meal{
				MealPlanID: plan.ID,
				RecipeID:   recipe.ID,
				Servings:   servings,
				UserID:     userID,
			}
			if err := tx.Create(&meal).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetMealPlan(ctx, planID, userID)
}

// UpdateStatus transitions a meal plan between ACTIVE and INACTIVE
func (s *MealPlanService) UpdateStatus(ctx context.Context, planID, userID uuid.UUID, status string) error {
	result := s.db.WithContext(ctx).
		Model(&models.MealPlan{}).
		Where("id = ? AND user_id = ?", planID, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMealPlanNotFound
	}
	return nil
}

// DeleteMealPlan deletes a meal plan and its meals
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, planID, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plan models.MealPlan
		if err := tx.First(&plan, "id = ? AND user_id = ?", planID, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMealPlanNotFound
			}
			return err
		}

		if err := tx.Where("meal_plan_id = ?", planID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plan).Error
	})
}
