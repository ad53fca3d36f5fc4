package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", authController.Login)
	api.Post("/register", authController.Register)
	api.Post("/logout", middleware.AuthMiddleware, authController.Logout)
	api.Get("/current-user", middleware.AuthMiddleware, authController.CurrentUser)
	api.Post("/reset-password", middleware.AuthMiddleware, authController.ResetPassword)
}
