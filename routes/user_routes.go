package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	// Update profil sendiri boleh untuk semua role
	profile := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware)
	profile.Put("/me", userController.UpdateMe)

	// Manajemen user hanya untuk manager
	api := app.Group(config.MAIN_ROUTES+"/users", middleware.AuthMiddleware, middleware.GuardPath("/admin"))

	api.Get("/", userController.GetAllUsers)
	api.Post("/", userController.CreateUser)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)
}
