package api

import (
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/scale"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Page is one page of a filtered recipe list.
type Page struct {
	Recipes    []model.Recipe `json:"recipes"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	Limited    bool           `json:"limited"`
}

// IngredientLine is a scaled ingredient. Error is set when the quantity
// could not be scaled and Quantity holds the placeholder.
type IngredientLine struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Error    string `json:"error,omitempty"`
}

// RecipeDetail is a recipe scaled to a serving count.
type RecipeDetail struct {
	Recipe      model.Recipe     `json:"recipe"`
	Servings    int              `json:"servings"`
	Ratio       float64          `json:"ratio"`
	TotalTime   int              `json:"total_time"`
	Ingredients []IngredientLine `json:"ingredients"`
	Nutrition   scale.Nutrition  `json:"nutrition"`
}

// Facets lists every value a filter can take.
type Facets struct {
	Tags           []string      `json:"tags"`
	Categories     []string      `json:"categories"`
	FoodCategories []string      `json:"food_categories"`
	Ingredients    []string      `json:"ingredients"`
	Bounds         filter.Bounds `json:"bounds"`
}

// SessionView is a session's filter state plus the requested result page.
type SessionView struct {
	ID     string        `json:"id"`
	State  *filter.State `json:"state"`
	Active bool          `json:"active"`
	// SearchPending is set while a live search keystroke waits out the debounce.
	SearchPending bool `json:"search_pending"`
	Page
}

// SearchRequest sets the free-text query.
type SearchRequest struct {
	Term string `json:"term" binding:"max=200"`
}

// ValuesRequest replaces a set facet.
type ValuesRequest struct {
	Values []string `json:"values" binding:"max=100,dive,max=100"`
}

// ValueRequest adds or toggles a single value.
type ValueRequest struct {
	Value string `json:"value" binding:"required,max=100"`
}

// RangeRequest moves one or both bounds of a nutrient range.
type RangeRequest struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

func ingredientLines(items []scale.Ingredient) []IngredientLine {
	out := make([]IngredientLine, len(items))
	for i, it := range items {
		out[i] = IngredientLine{Index: it.Index, Name: it.Name, Quantity: it.Quantity}
		if it.Err != nil {
			out[i].Error = it.Err.Error()
		}
	}
	return out
}
