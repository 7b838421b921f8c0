package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pageza/recipe-rover/backend/config"
	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/database"
	"github.com/pageza/recipe-rover/backend/internal/logging"
)

func main() {
	force := flag.Bool("force", false, "upsert the sample recipes even when the table is not empty")
	flag.Parse()

	if !config.GetEnvironment().IsProduction() {
		_ = godotenv.Load()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: os.Stdout})
	log := logging.With("seed")

	db, err := database.Open(cfg.Database, logging.With("database"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, cfg.Database.MigrationsDir, logging.With("migrate")); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo := database.NewRecipeRepository(db)
	recipes := catalog.SampleRecipes()
	if *force {
		if err := repo.Upsert(ctx, recipes); err != nil {
			log.Fatal().Err(err).Msg("failed to seed recipes")
		}
		log.Info().Int("recipes", len(recipes)).Msg("sample recipes upserted")
		return
	}

	seeded, err := repo.SeedIfEmpty(ctx, recipes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed recipes")
	}
	if !seeded {
		log.Info().Msg("recipes table is not empty, nothing to do (use -force to upsert)")
		return
	}
	log.Info().Int("recipes", len(recipes)).Msg("sample recipes seeded")
}
