package routes

import (
	"resto-app/config"
	"resto-app/controllers"
	"resto-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBahanRoutes(app *fiber.App, db *gorm.DB) {
	bahanController := controllers.NewBahanController(db)

	api := app.Group(config.MAIN_ROUTES+"/bahan", middleware.AuthMiddleware)

	api.Get("/riwayat", bahanController.GetRiwayat)
	api.Post("/riwayat/export", bahanController.ExportRiwayat)
	api.Get("/", bahanController.GetAllBahan)
	api.Post("/", bahanController.CreateBahan)
	api.Get("/:id", bahanController.GetBahanByID)
	api.Put("/:id", bahanController.UpdateBahan)
	api.Delete("/:id", bahanController.DeleteBahan)
}
