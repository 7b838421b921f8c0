package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pageza/recipe-rover/backend/internal/model"
)

// SchemaMigration records an applied SQL migration file.
type SchemaMigration struct {
	Name      string `gorm:"primaryKey;size:255"`
	AppliedAt time.Time
}

// RunMigrations brings the schema up to date: gorm auto-migration for the
// models, then every *.sql file in dir not yet recorded, in name order. An
// empty or missing dir skips the SQL step.
func RunMigrations(db *gorm.DB, dir string, log zerolog.Logger) error {
	if err := db.AutoMigrate(&model.Recipe{}, &SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	if dir == "" {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("dir", dir).Msg("migrations directory not found, skipping SQL migrations")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		var count int64
		if err := db.Model(&SchemaMigration{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			log.Debug().Str("migration", name).Msg("already applied")
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", name, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(content)).Error; err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Name: name, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
		log.Info().Str("migration", name).Msg("applied migration")
	}
	return nil
}
