package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)

	api := app.Group(config.MAIN_ROUTES+"/menu", middleware.AuthMiddleware)

	api.Put("/change-status/:id", menuController.ChangeStatus)
	api.Get("/", menuController.GetAllMenu)
	api.Post("/", menuController.CreateMenu)
	api.Get("/:id", menuController.GetMenuByID)
	api.Put("/:id", menuController.UpdateMenu)
	api.Delete("/:id", menuController.DeleteMenu)
}
