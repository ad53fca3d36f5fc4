package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReservasiRoutes(app *fiber.App, db *gorm.DB) {
	reservasiController := controllers.NewReservasiController(db)

	api := app.Group(config.MAIN_ROUTES+"/reservasi", middleware.AuthMiddleware)

	api.Get("/", reservasiController.GetAllReservasi)
	api.Post("/", reservasiController.CreateReservasi)
	api.Get("/:id", reservasiController.GetReservasiByID)
	api.Put("/:id", reservasiController.UpdateReservasi)
	api.Delete("/:id", reservasiController.DeleteReservasi)
}
