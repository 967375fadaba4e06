package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/samasante/backend/internal/adapters/cache"
	"github.com/samasante/backend/internal/adapters/providers/geolocation"
	"github.com/samasante/backend/internal/adapters/providers/images"
	"github.com/samasante/backend/internal/adapters/source"
	"github.com/samasante/backend/internal/api/handlers"
	"github.com/samasante/backend/internal/api/routes"
	"github.com/samasante/backend/internal/application/services"
	"github.com/samasante/backend/internal/domain/providers"
	"github.com/samasante/backend/internal/infrastructure/clients/openai"
	"github.com/samasante/backend/internal/infrastructure/clients/postgres"
	"github.com/samasante/backend/internal/infrastructure/clients/redis"
	"github.com/samasante/backend/internal/infrastructure/clients/typesense"
	"github.com/samasante/backend/internal/infrastructure/notifications"
	"github.com/samasante/backend/internal/infrastructure/observability"
	"github.com/samasante/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	// Remedy store and submission throttle
	store := cache.NewMemoryStore()
	throttle := cache.NewMemoryThrottle()
	if cfg.Redis.CacheBackend == "redis" {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, using in-memory remedy cache")
		} else {
			defer redisClient.Close()
			store = cache.NewRedisStore(redisClient)
			throttle = cache.NewRedisThrottle(redisClient)
			log.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis remedy cache initialized")
		}
	}

	// Remedy source
	remedySource := source.NewStaticSource()
	if cfg.Database.RemedySource == "postgres" {
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()

		pgSource := source.NewPostgresSource(pgClient)
		if err := pgSource.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate remedies table")
		}
		remedySource = pgSource
		log.Info().Msg("PostgreSQL remedy catalog initialized")
	}
	if cfg.Database.RemedySource == "typesense" {
		tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize Typesense client")
		}

		tsSource := source.NewTypesenseSource(tsClient)
		if err := tsSource.EnsureCollection(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure Typesense remedies collection")
		}
		remedySource = tsSource
		log.Info().Str("url", cfg.Typesense.URL).Msg("Typesense remedy catalog initialized")
	}

	remedyCache := services.NewRemedyCache(remedySource, store, metrics)

	// Generative pipeline; every flow degrades to CONFIGURATION_ABSENT without a key
	var (
		generator providers.RemedyGenerator
		assessor  providers.HealthAssessor
		triager   providers.EmergencyTriager
	)
	if cfg.OpenAI.APIKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set; generation, assessment and triage disabled")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize OpenAI client")
		} else {
			defer openaiClient.Close()
			generator, assessor, triager = openaiClient, openaiClient, openaiClient
		}
	}

	// Image providers in fallback order
	imageService := services.NewImageService(metrics,
		images.NewUnsplashProvider(cfg.Images.UnsplashAccessKey),
		images.NewPexelsProvider(cfg.Images.PexelsAPIKey),
	)

	// SMS sender
	var smsSender providers.SMSSender = notifications.NewLogSMSSender()
	if cfg.SMS.Provider == "http" {
		httpSender, err := notifications.NewHTTPSMSSender(&cfg.SMS)
		if err != nil {
			log.Warn().Err(err).Msg("SMS gateway not configured, alerts will only be logged")
		} else {
			smsSender = httpSender
		}
	}

	// Clinic directory and geocoding
	directory := geolocation.NewDirectoryProvider()
	var geocoder providers.GeolocationProvider = directory
	if cfg.Geolocation.Provider == "google" {
		if cfg.Geolocation.APIKey == "" {
			log.Warn().Msg("GEOLOCATION_API_KEY is not set; using the built-in city table")
		} else {
			geocoder = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey)
		}
	}
	resolver := geolocation.NewLocationResolver(geocoder, geolocation.DefaultLocationTimeout)

	// Initialize services
	remedyService := services.NewRemedyService(remedyCache, generator)
	emergencyService := services.NewEmergencyService(resolver, triager, directory, smsSender, metrics)
	assessmentService := services.NewAssessmentService(assessor)

	go func() {
		warmed := services.NewCacheWarmingService(remedyCache).WarmCache(ctx)
		log.Info().Int("entries", warmed).Msg("Remedy cache warmed")
	}()

	// Initialize handlers
	remedyHandler := handlers.NewRemedyHandler(remedyService, imageService, remedyCache)
	emergencyHandler := handlers.NewEmergencyHandler(emergencyService, throttle)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)

	// Set up router
	router := routes.NewRouter(remedyHandler, emergencyHandler, assessmentHandler, metrics)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
