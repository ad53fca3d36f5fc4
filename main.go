package main

import (
	"fmt"
	"log"

	"resto-app/config"
	"resto-app/controllers/idgen"
	"resto-app/database"
	"resto-app/routes"
	"resto-app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func main() {
	config.LoadConfig()

	// Harga di-serialize sebagai angka JSON, bukan string
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	if err := storage.Connect(); err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	// Foto menu yang disimpan di disk lokal
	if config.StorageDriver == "local" {
		app.Static("/uploads", config.StorageLocalPath)
	}

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupMenuRoutes(app, db)
	routes.SetupBahanRoutes(app, db)
	routes.SetupMejaRoutes(app, db)
	routes.SetupReservasiRoutes(app, db)
	routes.SetupPesananRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
