package filter

import (
	"slices"
	"strings"

	"github.com/pageza/recipe-rover/backend/internal/model"
)

type predicate func(r *model.Recipe) bool

// Apply returns the recipes matching every active facet of st, in input
// order. It never errors: an empty result is a valid outcome. A nil state
// matches everything.
func Apply(recipes []model.Recipe, st *State) []model.Recipe {
	preds := predicates(st)
	out := make([]model.Recipe, 0, len(recipes))
	for i := range recipes {
		if matchAll(&recipes[i], preds) {
			out = append(out, recipes[i])
		}
	}
	return out
}

func matchAll(r *model.Recipe, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// predicates builds the active checks in evaluation order: search, tags,
// categories, nutrients, included and excluded ingredients.
func predicates(st *State) []predicate {
	if st == nil {
		return nil
	}
	var preds []predicate

	if st.Search != "" {
		term := strings.ToLower(st.Search)
		preds = append(preds, func(r *model.Recipe) bool {
			return strings.Contains(strings.ToLower(r.Name), term)
		})
	}

	if len(st.Tags) > 0 {
		tags := st.Tags
		preds = append(preds, func(r *model.Recipe) bool {
			for _, t := range r.Tags {
				if slices.Contains(tags, t) {
					return true
				}
			}
			return false
		})
	}

	if len(st.Categories) > 0 {
		categories := st.Categories
		preds = append(preds, func(r *model.Recipe) bool {
			return slices.Contains(categories, r.Category)
		})
	}

	if len(st.Nutrients) > 0 {
		ranges := make(map[model.Macro]Range, len(st.Nutrients))
		for m, rg := range st.Nutrients {
			ranges[m] = rg
		}
		preds = append(preds, func(r *model.Recipe) bool {
			for m, rg := range ranges {
				if !rg.Contains(r.Nutrients.Value(m)) {
					return false
				}
			}
			return true
		})
	}

	if len(st.IncludedIngredients) > 0 {
		terms := lowerAll(st.IncludedIngredients)
		preds = append(preds, func(r *model.Recipe) bool {
			ingredients := lowerAll(r.Ingredients)
			for _, term := range terms {
				if !anyContains(ingredients, term) {
					return false
				}
			}
			return true
		})
	}

	if len(st.ExcludedIngredients) > 0 {
		terms := lowerAll(st.ExcludedIngredients)
		preds = append(preds, func(r *model.Recipe) bool {
			ingredients := lowerAll(r.Ingredients)
			for _, term := range terms {
				if anyContains(ingredients, term) {
					return false
				}
			}
			return true
		})
	}

	return preds
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func anyContains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
