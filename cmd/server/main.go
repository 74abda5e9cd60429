package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"pedala/internal/app"
	"pedala/internal/config"
	"pedala/internal/handler"
	internalRedis "pedala/internal/redis"
	"pedala/internal/repository"
	"pedala/internal/repository/postgres"
	"pedala/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before the stores so we can instrument them).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis with New Relic instrumentation. Redis holds the
	// user and scheduled-ride records.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Optional bike-fleet database.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to fleet database: %v", err)
	}
	if db != nil {
		defer db.Close()
		log.Println("Connected to fleet database")
	}

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	userStore := internalRedis.NewUserStore(redisClient)
	rideStore := internalRedis.NewRideStore(redisClient)
	candidateStore := internalRedis.NewCandidateStore(redisClient, cfg.Location.CandidateTTL)
	locationStore := internalRedis.NewLocationStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)

	// Optional fleet repository.
	var fleetRepo repository.FleetRepository
	if db != nil {
		fleetRepo = postgres.NewFleetRepository(db)
	}

	// Initialize services.
	loyalty := service.NewLoyaltyLedger(cfg.Loyalty)
	pricing := service.NewPricingCalculator(cfg.Pricing, loyalty)
	locator := service.NewBikeLocator(cfg.Location, fleetRepo)
	resolver := service.NewLocationResolver(locationStore, cfg.Location)
	authService := service.NewAuthService(userStore, cfg.Auth)
	rentalService := service.NewRentalService(userStore, candidateStore, lockStore, pricing, cfg.Pricing, cfg.Location.MaxRentRadiusM)
	scheduler := service.NewRideScheduler(rideStore)
	aggregator := service.NewRankingAggregator(userStore, cfg.Pricing.AverageSpeedKmh)
	exportService := service.NewExportService(userStore, userStore, cfg.Export, cfg.Pricing.AverageSpeedKmh)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(authService, userStore, loyalty)
	bikeHandler := handler.NewBikeHandler(locator, resolver, candidateStore)
	rentalHandler := handler.NewRentalHandler(rentalService)
	rideHandler := handler.NewRideHandler(scheduler)
	rankingHandler := handler.NewRankingHandler(aggregator)
	exportHandler := handler.NewExportHandler(exportService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthService:    authService,
		AuthHandler:    authHandler,
		ProfileHandler: profileHandler,
		BikeHandler:    bikeHandler,
		RentalHandler:  rentalHandler,
		RideHandler:    rideHandler,
		RankingHandler: rankingHandler,
		ExportHandler:  exportHandler,
		RedisClient:    redisClient,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
