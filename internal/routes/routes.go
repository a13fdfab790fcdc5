package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dkadris/storefront/internal/config"
	"github.com/dkadris/storefront/internal/handlers"
	"github.com/dkadris/storefront/internal/middleware"
	"github.com/dkadris/storefront/internal/services"
	"github.com/dkadris/storefront/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, cfg *config.Config) {
	gateway := services.NewWorkerGateway(cfg.WorkerBaseURL, cfg.WorkerAPIKey)
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	catalogService := services.NewCatalogService(st, gateway)
	galleryService := services.NewGalleryService(st, gateway)
	affiliateService := services.NewAffiliateService(st)
	payoutService := services.NewPayoutService(st)
	orderService := services.NewOrderService(st, catalogService, gateway, telegramService)
	settingsService := services.NewSettingsService(st, gateway)

	catalogHandler := handlers.NewCatalogHandler(catalogService, cfg)
	galleryHandler := handlers.NewGalleryHandler(galleryService, cfg)
	affiliateHandler := handlers.NewAffiliateHandler(affiliateService, payoutService, gateway, cfg)
	payoutHandler := handlers.NewPayoutHandler(payoutService, gateway, cfg)
	orderHandler := handlers.NewOrderHandler(orderService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	adminHandler := handlers.NewAdminHandler(st, gateway, cfg)
	eventsHandler := handlers.NewEventsHandler(st)

	adminOnly := middleware.AdminRequired(cfg)

	api := app.Group("/api")

	// Always reachable, even during maintenance.
	api.Get("/health", adminHandler.Health)
	api.Get("/maintenance", settingsHandler.Maintenance)
	api.Post("/maintenance", adminOnly, settingsHandler.SetMaintenance)
	api.Post("/admin/login", adminHandler.Login)

	// Everything below goes through the gate; admins always pass it.
	api.Use(middleware.MaintenanceGate(st, cfg))

	// Catalog
	api.Get("/catalogs", catalogHandler.List)
	api.Post("/catalogs", adminOnly, catalogHandler.Upsert)
	api.Delete("/catalogs/:id", adminOnly, catalogHandler.Delete)

	// Gallery
	api.Get("/gallery", galleryHandler.Fetch)
	api.Post("/gallery", adminOnly, galleryHandler.Replace)
	api.Post("/gallery/reorder", adminOnly, galleryHandler.Reorder)

	// Settings
	api.Get("/settings", settingsHandler.Get)
	api.Post("/settings", adminOnly, settingsHandler.Update)

	// Orders
	api.Post("/orders/track", orderHandler.Track)

	// Change notifications
	api.Get("/events", adminOnly, eventsHandler.Stream)

	// Affiliate program
	affiliate := api.Group("/affiliate")
	affiliate.Post("/signup", affiliateHandler.Signup)
	affiliate.Post("/login", affiliateHandler.Login)
	affiliate.Get("/stats", affiliateHandler.Stats)
	affiliate.Get("/verify", affiliateHandler.Verify)
	affiliate.Post("/payouts", affiliateHandler.RequestPayout)

	// Back office
	admin := api.Group("/admin", adminOnly)
	admin.Get("/stats", adminHandler.Dashboard)
	admin.Get("/orders", orderHandler.List)
	admin.Get("/payouts", payoutHandler.List)
	admin.Patch("/payouts/:id", payoutHandler.UpdateStatus)
}
