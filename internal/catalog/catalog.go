// Package catalog holds the read-only recipe collection loaded once at
// startup together with the facet values derived from it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
)

// ErrRecipeNotFound is returned by Get for an unknown id.
var ErrRecipeNotFound = errors.New("recipe not found")

// Source supplies the recipe collection. The database repository and the
// in-memory sample set both satisfy it.
type Source interface {
	List(ctx context.Context) ([]model.Recipe, error)
}

// Catalog is an ordered, immutable recipe collection. It is safe for
// concurrent readers because nothing mutates it after New.
type Catalog struct {
	recipes     []model.Recipe
	byID        map[uint]int
	bounds      filter.Bounds
	tags        []string
	ingredients []string
	categories  []string
}

// New builds a catalog from recipes, rejecting invalid or duplicate entries.
func New(recipes []model.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]model.Recipe, 0, len(recipes)),
		byID:    make(map[uint]int, len(recipes)),
	}
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %d", r.ID)
		}
		r.Tags = slices.Clone(r.Tags)
		r.Ingredients = slices.Clone(r.Ingredients)
		r.Instructions = slices.Clone(r.Instructions)
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, r)

		c.tags = appendNew(c.tags, r.Tags...)
		c.ingredients = appendNew(c.ingredients, r.Ingredients...)
		if r.Category != "" {
			c.categories = appendNew(c.categories, r.Category)
		}
	}
	c.bounds = filter.ComputeBounds(c.recipes)
	return c, nil
}

// Load reads every recipe from src and builds a catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	recipes, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return New(recipes)
}

// Recipes returns the collection in load order. Callers must not modify it.
func (c *Catalog) Recipes() []model.Recipe {
	return c.recipes
}

// Len returns the number of recipes.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// Get returns the recipe with id.
func (c *Catalog) Get(id uint) (*model.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRecipeNotFound, id)
	}
	r := c.recipes[i]
	return &r, nil
}

// Bounds returns the per-macro span observed across the collection.
func (c *Catalog) Bounds() filter.Bounds {
	out := make(filter.Bounds, len(c.bounds))
	for m, r := range c.bounds {
		out[m] = r
	}
	return out
}

// NewState returns a filter state seeded with the catalog bounds.
func (c *Catalog) NewState() *filter.State {
	return filter.NewState(c.bounds)
}

// Tags returns every tag in first-seen order.
func (c *Catalog) Tags() []string { return slices.Clone(c.tags) }

// Ingredients returns every ingredient in first-seen order.
func (c *Catalog) Ingredients() []string { return slices.Clone(c.ingredients) }

// Categories returns the categories used by at least one recipe.
func (c *Catalog) Categories() []string { return slices.Clone(c.categories) }

func appendNew(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
