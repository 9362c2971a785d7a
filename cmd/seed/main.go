package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/forkful/mealplanner-backend/config"
	"github.com/forkful/mealplanner-backend/internal/database"
	"github.com/forkful/mealplanner-backend/internal/models"
	"github.com/forkful/mealplanner-backend/internal/service"
	"github.com/forkful/mealplanner-backend/internal/units"
)

// Seeds a demo user with a small cookbook for local development.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	var user models.User
	err = db.Where("email = ?", "demo@example.com").First(&user).Error
	if err != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user = models.User{
			Name:         "Demo User",
			Email:        "demo@example.com",
			PasswordHash: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		if err := db.Create(&models.UserSettings{UserID: user.ID, DefaultServingSize: 2}).Error; err != nil {
			log.Fatalf("Failed to create demo settings: %v", err)
		}
	}

	recipes := service.NewRecipeService(db)
	ctx := context.Background()

	for _, recipe := range demoRecipes(user.ID) {
		var count int64
		db.Model(&models.Recipe{}).Where("user_id = ? AND name = ?", user.ID, recipe.Name).Count(&count)
		if count > 0 {
			continue
		}
		if _, err := recipes.CreateRecipe(ctx, recipe); err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", recipe.Name, err)
		}
		log.Printf("Seeded recipe: %s", recipe.Name)
	}

	log.Println("Seeding complete")
}

func demoRecipes(userID uuid.UUID) []*models.Recipe {
	return []*models.Recipe{
		{
			Name:        "Buttermilk Pancakes",
			Description: "Fluffy weekend pancakes.",
			PrepTime:    "10 min",
			CookTime:    "15 min",
			Servings:    4,
			Steps:       models.JSONBStringArray{"Whisk dry ingredients", "Fold in buttermilk and eggs", "Cook on a greased griddle"},
			UserID:      userID,
			Ingredients: []models.Ingredient{
				{Name: "flour", Amount: 2, Type: units.TypeVolume, Unit: units.Cup},
				{Name: "buttermilk", Amount: 2, Type: units.TypeVolume, Unit: units.Cup},
				{Name: "eggs", Amount: 2, Type: units.TypeCount},
				{Name: "baking soda", Amount: 1, Type: units.TypeVolume, Unit: units.Teaspoon},
				{Name: "salt", Amount: 2, Type: units.TypeVolume, Unit: units.Pinch},
			},
		},
		{
			Name:        "Roast Chicken",
			Description: "Simple whole roast chicken.",
			PrepTime:    "15 min",
			CookTime:    "1 hour 30 min",
			Servings:    4,
			Steps:       models.JSONBStringArray{"Pat the chicken dry", "Season generously", "Roast at 425F until done"},
			UserID:      userID,
			Ingredients: []models.Ingredient{
				{Name: "whole chicken", Amount: 1, Type: units.TypeCount},
				{Name: "butter", Amount: 4, Type: units.TypeWeight, Unit: units.Ounce},
				{Name: "salt", Amount: 1, Type: units.TypeVolume, Unit: units.Tablespoon},
			},
		},
		{
			Name:        "Bread Loaf",
			Description: "Everyday sandwich bread.",
			PrepTime:    "20 min",
			CookTime:    "40 min",
			Servings:    8,
			Steps:       models.JSONBStringArray{"Mix and knead the dough", "Proof until doubled", "Bake until golden"},
			UserID:      userID,
			Ingredients: []models.Ingredient{
				{Name: "flour", Amount: 1, Type: units.TypeWeight, Unit: units.Pound},
				{Name: "water", Amount: 300, Type: units.TypeVolume, Unit: units.Milliliter},
				{Name: "yeast", Amount: 7, Type: units.TypeWeight, Unit: units.Gram},
				{Name: "salt", Amount: 2, Type: units.TypeVolume, Unit: units.Teaspoon},
			},
		},
	}
}
