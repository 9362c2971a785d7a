package router

import (
	"github.com/gin-gonic/gin"

	"github.com/forkful/mealplanner-backend/internal/api"
	"github.com/forkful/mealplanner-backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	mealPlanHandler *api.MealPlanHandler,
	groceryHandler *api.GroceryListHandler,
	authService middleware.TokenValidator,
	rateLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		settings := protected.Group("/settings")
		{
			settings.GET("", authHandler.GetSettings)
			settings.PUT("", authHandler.UpdateSettings)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			recipes.POST("/:id/image", recipeHandler.UploadImage)
		}

		plans := protected.Group("/mealplans")
		{
			plans.GET("", mealPlanHandler.ListMealPlans)
			plans.POST("", mealPlanHandler.CreateMealPlan)
			plans.GET("/:id", mealPlanHandler.GetMealPlan)
			plans.DELETE("/:id", mealPlanHandler.DeleteMealPlan)
			plans.POST("/:id/meals", mealPlanHandler.AddMeal)
			plans.DELETE("/:id/meals/:mealId", mealPlanHandler.RemoveMeal)
			plans.POST("/:id/meals/random", mealPlanHandler.AddRandomMeals)

			grocery := plans.Group("/:id/grocerylist")
			if rateLimiter != nil {
				grocery.POST("", rateLimiter.Middleware(), groceryHandler.CreateGroceryList)
			} else {
				grocery.POST("", groceryHandler.CreateGroceryList)
			}
			grocery.GET("", groceryHandler.GetGroceryList)
		}

		lists := protected.Group("/grocerylists")
		{
			lists.PATCH("/:id/items/:itemId", groceryHandler.ToggleItem)
		}
	}

	return router
}
