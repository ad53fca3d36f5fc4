package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPesananRoutes(app *fiber.App, db *gorm.DB) {
	pesananController := controllers.NewPesananController(db)

	api := app.Group(config.MAIN_ROUTES+"/pesanan", middleware.AuthMiddleware)

	api.Get("/ongoing", pesananController.GetOngoingPesanan)
	api.Get("/last", pesananController.GetLastPesanan)
	api.Post("/profit", pesananController.GetProfit)
	api.Get("/", pesananController.GetAllPesanan)
	api.Post("/", pesananController.CreatePesanan)
	api.Get("/:id", pesananController.GetPesananByID)
	api.Patch("/:id", pesananController.UpdateStatusPesanan)
}
