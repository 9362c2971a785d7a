package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/models"
)

// AutoMigrate creates or updates the schema for every model. SQL-file
// migrations (cmd/migrate) are preferred for production postgres; this
// covers sqlite test databases and local bootstrapping.
func AutoMigrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		log.Printf("Using GORM auto-migration for SQLite")
	}

	return db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.MealPlan{},
		&models.Meal{},
		&models.GroceryList{},
		&models.GroceryListItem{},
	)
}
