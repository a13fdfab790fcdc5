package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/database"
	"github.com/dkadris/storefront/internal/routes"
	"github.com/dkadris/storefront/internal/services"
	"github.com/dkadris/storefront/internal/store"
)

func main() {
	cfg := config.Load()

	var kv store.KV
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory document store")
		kv = store.NewMemoryKV()
	} else {
		db := database.Connect(cfg.DatabaseURL)
		kv = database.NewDocumentKV(db)
	}
	st := store.New(kv)

	app := fiber.New(fiber.Config{
		AppName: "D-Kadris Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, st, cfg)

	if !cfg.Standalone() {
		gateway := services.NewWorkerGateway(cfg.WorkerBaseURL, cfg.WorkerAPIKey)
		if !gateway.IsActive() {
			log.Printf("Worker health probe failed at startup: %s", cfg.WorkerBaseURL)
		}
	}

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
