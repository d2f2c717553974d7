package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"mission-mischief/handlers"
	"mission-mischief/logging"
	"mission-mischief/metrics"
	"mission-mischief/middleware"
	"mission-mischief/services"
	"mission-mischief/stores"
	"mission-mischief/utils"
	"mission-mischief/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	envErr := godotenv.Load()

	log := logging.New(getEnv("LOG_LEVEL", "info"), os.Getenv("APP_ENV") == "development")
	defer log.Sync()

	if envErr != nil {
		log.Info("⚠️  No .env file found, reading environment variables directly")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx)
	if err != nil {
		log.Fatalf("failed to open document store: %v", err)
	}

	catalog := services.DefaultCatalog()
	log.Infof("✅ Mission catalog loaded: %d missions, %d badges", catalog.Len(), len(catalog.Badges()))

	// --- Optional shared trial store ---
	var remote services.TrialRemote
	var syncClient *workers.TrialSyncClient
	if syncURL := os.Getenv("TRIAL_SYNC_URL"); syncURL != "" {
		syncClient = workers.NewTrialSyncClient(syncURL, os.Getenv("TRIAL_SYNC_TOKEN"), getDuration("TRIAL_SYNC_TIMEOUT", utils.DefaultRemoteTimeout))
		remote = syncClient
	} else {
		log.Info("⚠️  TRIAL_SYNC_URL not set, trials stay local only")
	}

	playerService := services.NewPlayerService(
		catalog,
		services.NewProfileRepository(store),
		services.NewTrialRepository(store),
		remote,
	)

	sched, err := playerService.StartTrialScheduler(ctx, getDuration("TRIAL_SWEEP_INTERVAL", time.Minute))
	if err != nil {
		log.Fatalf("failed to start trial scheduler: %v", err)
	}
	defer sched.Shutdown()

	if syncClient != nil {
		go workers.PollTrials(ctx, playerService, getDuration("TRIAL_SYNC_INTERVAL", 30*time.Second))
	}

	app := fiber.New(fiber.Config{
		AppName:   "mission-mischief",
		BodyLimit: 1 * 1024 * 1024,
	})

	allowedOriginsEnv := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOriginsString,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Player-Handle",
		ExposeHeaders: "Content-Length, Content-Type",
		MaxAge:        86400,
	}))

	app.Use(metrics.Instrument())

	app.Get("/metrics", metrics.Handler())
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	deviceToken := os.Getenv("DEVICE_TOKEN")

	// EventSource cannot send headers, so the stream lives outside /api/v1.
	app.Get("/events/trials", middleware.SSETokenMiddleware(deviceToken), playerService.StreamTrialsSSE)

	api := app.Group("/api/v1")
	if deviceToken != "" {
		api.Use(middleware.DeviceAuthMiddleware(deviceToken))
		log.Info("✅ DeviceAuthMiddleware enforced on /api/v1")
	} else {
		log.Info("⚠️  DEVICE_TOKEN not set, API is open to any local client")
	}

	handlers.SetupCatalogRoutes(api, catalog)
	handlers.SetupProgressionRoutes(api, playerService)
	handlers.SetupTrialRoutes(api, playerService)

	port := getEnv("PORT", "5200")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Errorf("Server error: %v", err)
		}
	}()

	log.Infof("✅ Server running on http://localhost:%s", port)
	log.Infof("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
}

// openStore picks the document backend from STORE_BACKEND.
func openStore(ctx context.Context) (stores.DocumentStore, error) {
	switch backend := getEnv("STORE_BACKEND", "file"); backend {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, errMissingEnv("DATABASE_URL")
		}
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		store := stores.NewGormStore(db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		return store, nil
	case "r2":
		cfg := utils.R2ConfigFromEnv()
		client, err := utils.NewR2Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return stores.NewR2Store(client, cfg.Bucket, getEnv("R2_PREFIX", "mission-mischief")), nil
	case "sqlite":
		return stores.OpenSQLiteStore(ctx, getEnv("SQLITE_PATH", "./data/mission-mischief.sqlite"))
	case "file":
		return stores.NewFileStore(getEnv("DATA_DIR", "./data"))
	default:
		return nil, errUnknownBackend(backend)
	}
}
