package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/pageza/recipe-rover/backend/config"
	"github.com/pageza/recipe-rover/backend/internal/database"
	"github.com/pageza/recipe-rover/backend/internal/logging"
)

func main() {
	dir := flag.String("dir", "", "directory of *.sql migrations (defaults to the configured migrations_dir)")
	flag.Parse()

	if !config.GetEnvironment().IsProduction() {
		_ = godotenv.Load()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: os.Stdout})
	log := logging.With("migrate")

	migrationsDir := cfg.Database.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	db, err := database.Open(cfg.Database, logging.With("database"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.RunMigrations(db, migrationsDir, log); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Str("dir", migrationsDir).Msg("all migrations applied successfully")
}
