package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/model"
)

// RecipeRepository reads and seeds the recipes table. It satisfies
// catalog.Source.
type RecipeRepository struct {
	db *gorm.DB
}

var _ catalog.Source = (*RecipeRepository)(nil)

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// List returns every recipe ordered by id.
func (r *RecipeRepository) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Count returns the number of stored recipes.
func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Recipe{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return n, nil
}

// Upsert validates and writes recipes, replacing rows with the same id.
func (r *RecipeRepository) Upsert(ctx context.Context, recipes []model.Recipe) error {
	for i := range recipes {
		if err := recipes[i].Validate(); err != nil {
			return err
		}
	}
	if len(recipes) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&recipes).Error
	if err != nil {
		return fmt.Errorf("failed to upsert recipes: %w", err)
	}
	return nil
}

// SeedIfEmpty writes recipes only when the table has no rows. It reports
// whether anything was written.
func (r *RecipeRepository) SeedIfEmpty(ctx context.Context, recipes []model.Recipe) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := r.Upsert(ctx, recipes); err != nil {
		return false, err
	}
	return true, nil
}
