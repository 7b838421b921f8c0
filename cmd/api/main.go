package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-rover/backend/config"
	"github.com/pageza/recipe-rover/backend/internal/api"
	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/database"
	"github.com/pageza/recipe-rover/backend/internal/logging"
	"github.com/pageza/recipe-rover/backend/internal/middleware"
	"github.com/pageza/recipe-rover/backend/internal/router"
	"github.com/pageza/recipe-rover/backend/internal/server"
	"github.com/pageza/recipe-rover/backend/internal/session"
)

func main() {
	if !config.GetEnvironment().IsProduction() {
		_ = godotenv.Load()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stdout,
	})
	log := logging.With("api")
	log.Info().
		Str("environment", string(cfg.Env)).
		Str("database", cfg.RedactedDSN()).
		Msg("starting recipe rover")

	if err := run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database, logging.With("database"))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.RunMigrations(db, cfg.Database.MigrationsDir, logging.With("migrate")); err != nil {
		return err
	}

	repo := database.NewRecipeRepository(db)
	if cfg.Catalog.SeedOnEmpty {
		seeded, err := repo.SeedIfEmpty(ctx, catalog.SampleRecipes())
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Msg("seeded sample recipes")
		}
	}

	cat, err := catalog.Load(ctx, repo)
	if err != nil {
		return err
	}
	log.Info().Int("recipes", cat.Len()).Msg("catalog loaded")

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			// Downloads fall back to the in-process limiter.
			log.Warn().Err(err).Msg("redis unavailable, using local rate limiter")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var images api.ImageResolver
	if cfg.Storage.Enabled() {
		store, err := config.NewImageStore(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		images = store
	}

	sessions := session.NewStore(cat,
		session.WithTTL(cfg.Session.TTL),
		session.WithSearchDebounce(cfg.Session.SearchDebounce),
		session.WithStoreLogger(logging.With("session")),
	)
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go session.NewSweeper(sessions, cfg.Session.SweepInterval, logging.With("sweeper")).Run(sweepCtx)

	handler := api.NewHandler(cat, sessions, images, api.Options{
		FreeLimit:      cfg.Catalog.FreeLimit,
		PageSize:       cfg.Catalog.PageSize,
		AllowedOrigins: cfg.Server.CORSOrigins,
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	}, logging.With("http"))

	exportLimiter := middleware.NewExportLimiter(redisClient, cfg.RateLimit.ExportPerMinute)
	if local, ok := exportLimiter.(*middleware.LocalLimiter); ok {
		go local.Run(sweepCtx, cfg.Session.SweepInterval, logging.With("rate_limit"))
	}

	engine := router.SetupRouter(handler, router.Config{
		CORSOrigins:    cfg.Server.CORSOrigins,
		JWTSecret:      cfg.Auth.JWTSecret,
		TrustedProxies: cfg.Server.TrustedProxies,
		ExportLimiter:  exportLimiter,
	}, logging.With("router"))

	return server.New(cfg.Server, engine, logging.With("server")).Start(ctx)
}
