package main

import (
	"log"

	"tip-collect-system/config"
	"tip-collect-system/handlers"
	"tip-collect-system/payments"
	"tip-collect-system/services"
	"tip-collect-system/storage"
	"tip-collect-system/utils"
	"tip-collect-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	var backend storage.Store
	switch cfg.StoreBackend {
	case "memory":
		backend = storage.NewMemoryStore()
	case "file":
		backend = storage.NewFileStore(cfg.StoreFile)
	case "postgres":
		pg, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to open postgres store: ", err)
		}
		backend = pg
	}
	store := storage.NewSerialized(backend)

	// First load creates the empty document if nothing is persisted yet.
	snap, err := store.Load()
	if err != nil {
		log.Fatal("failed to initialize store: ", err)
	}
	log.Printf("📦 store ready (%s): %d staff, %d qr bindings, %d tips",
		cfg.StoreBackend, len(snap.Staff), len(snap.Qr), len(snap.Tips))

	var processor payments.Processor
	if cfg.StripeSecretKey == "" {
		log.Println("⚠️  STRIPE_SECRET_KEY not set — checkout runs in simulated mode, no charges occur")
		processor = payments.SimulatedProcessor{}
	} else {
		processor = payments.NewStripeProcessor(cfg.StripeAPIBase, cfg.StripeSecretKey, cfg.CheckoutTimeout)
	}

	staffService := services.NewStaffService(store)
	qrService := services.NewQrService(store, utils.RandomTokenGenerator{}, cfg.BaseURL)
	checkoutService := services.NewCheckoutService(store, processor, cfg.BaseURL, cfg.Currency, cfg.NoteLimit, cfg.CheckoutTimeout)
	tipService := services.NewTipService(store)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Admin-Key",
	}))

	handlers.SetupRoutes(app, staffService, qrService, checkoutService, tipService, cfg.AdminAPIKey)

	if cfg.BackupBucket != "" {
		uploader, err := utils.NewBackupUploader(cfg.BackupBucket)
		if err != nil {
			log.Fatal("failed to initialize backup uploader: ", err)
		}
		workers.NewBackupWorker(store, uploader, cfg.BackupInterval).Start()
	}

	log.Printf("🚀 tip-collect-system listening on :%s (base url %s)", cfg.Port, cfg.BaseURL)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
