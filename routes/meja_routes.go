package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMejaRoutes(app *fiber.App, db *gorm.DB) {
	mejaController := controllers.NewMejaController(db)

	api := app.Group(config.MAIN_ROUTES+"/meja", middleware.AuthMiddleware)

	api.Get("/", mejaController.GetAllMeja)
	api.Post("/", mejaController.CreateMeja)
	api.Get("/:id", mejaController.GetMejaByNo)
	api.Put("/:id", mejaController.ReleaseMeja)
}
