package routes

import (
	"moodbite/domain"
	"moodbite/internal/api/handlers"
	"moodbite/internal/middleware"
	"moodbite/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	RecipeHandler       handlers.RecipeHandler
	GamificationHandler handlers.GamificationHandler
	ExportHandler       handlers.ExportHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestID())
	c.GuestRoute()
	c.Recipes()
	c.Pet()
	c.Missions()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
	c.App.Get("/api/v1/mood", c.RecipeHandler.GetMood)
	c.App.Get("/api/v1/export", c.ExportHandler.Export)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	// static paths before /:id
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/suggestions", c.RecipeHandler.GetSuggestions)
	recipes.Get("/search", c.RecipeHandler.SearchByName)
	recipes.Get("/collection", c.RecipeHandler.GetCollection)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	recipes.Post("/:id/favorite", auth, c.GamificationHandler.ToggleFavorite)
	recipes.Post("/:id/complete", auth, c.GamificationHandler.ToggleCompleted)
	recipes.Post("/:id/instructions-view", auth, c.GamificationHandler.RecordInstructionsView)
	recipes.Post("/:id/feed", auth, c.GamificationHandler.Feed)
}

func (c *Config) Pet() {
	pet := c.App.Group("/api/v1/pet")
	pet.Get("", c.GamificationHandler.GetPet)
	pet.Put("/mood", c.Middleware.AuthMiddleware(c.JWTService), c.GamificationHandler.SetPetMood)
}

func (c *Config) Missions() {
	c.App.Get("/api/v1/missions", c.GamificationHandler.GetMissions)
}
