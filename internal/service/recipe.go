package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/units"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe creates a new recipe along with its ingredient list.
// Ingredient units are validated and converted to kelevens here, so a
// bad unit fails the whole save.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := fillIngredientKelevens(recipe.Ingredients); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a recipe and its ingredients by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("Ingredients").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe updates a recipe. The ingredient list is fully replaced
// with the one supplied.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	if err := fillIngredientKelevens(recipe.Ingredients); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Recipe
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        recipe.Name,
			"description": recipe.Description,
			"prep_time":   recipe.PrepTime,
			"cook_time":   recipe.CookTime,
			"servings":    recipe.Servings,
			"steps":       recipe.Steps,
			"notes":       recipe.Notes,
			"image_url":   recipe.ImageURL,
			"is_public":   recipe.IsPublic,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}

		if len(recipe.Ingredients) == 0 {
			return nil
		}
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].ID = uuid.Nil
			recipe.Ingredients[i].RecipeID = id
		}
		return tx.Create(&recipe.Ingredients).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe and its ingredients
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// ListRecipes lists recipes for a user, optionally filtered by a keyword
// search over name and description.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, search string) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx).Preload("Ingredients").Where("user_id = ?", userID)

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var recipes []models.Recipe
	if err := query.Order("updated_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// CountRecipes returns the number of recipes a user owns
func (s *RecipeService) CountRecipes(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// fillIngredientKelevens validates each ingredient's unit against the
// registry and stores its keleven quantity. Count-type ingredients carry
// no unit and no kelevens.
func fillIngredientKelevens(ingredients []models.Ingredient) error {
	for i := range ingredients {
		ing := &ingredients[i]

		if ing.Amount <= 0 {
			return fmt.Errorf("%w: %q has amount %v", units.ErrInvalidAmount, ing.Name, ing.Amount)
		}

		if ing.Type == units.TypeCount {
			ing.Unit = units.NoUnit
			ing.Kelevens = 0
			continue
		}

		uom, ok := units.Lookup(ing.Unit)
		if !ok || uom.Type != ing.Type {
			return fmt.Errorf("%w: %q for type %s", units.ErrInvalidUnit, ing.Unit, ing.Type)
		}
		ing.Kelevens = uom.Kelevens * ing.Amount
	}
	return nil
}
