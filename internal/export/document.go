// Package export renders recipes as downloadable Markdown documents.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pageza/recipe-rover/backend/internal/model"
	"github.com/pageza/recipe-rover/backend/internal/scale"
)

// ContentType is the media type of rendered documents.
const ContentType = "text/markdown; charset=utf-8"

// DateLayout formats the footer date.
const DateLayout = "January 2, 2006"

// Document renders r for the given servings. ingredients and nutrition must
// already be scaled to that serving count.
func Document(r *model.Recipe, ingredients []scale.Ingredient, nutrition scale.Nutrition, servings int, date time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}
	fmt.Fprintf(&b, "Servings: %d\n\n", servings)

	b.WriteString("## Tags\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Join(r.Tags, ", "))

	b.WriteString("## Nutrition Information\n")
	fmt.Fprintf(&b, "- Calories: %s\n", num(nutrition.Calories))
	fmt.Fprintf(&b, "- Protein: %sg (%s%%)\n", num(nutrition.Protein), num(nutrition.ProteinPercent))
	fmt.Fprintf(&b, "- Carbohydrates: %sg (%s%%)\n", num(nutrition.Carbs), num(nutrition.CarbsPercent))
	fmt.Fprintf(&b, "- Fat: %sg (%s%%)\n\n", num(nutrition.Fat), num(nutrition.FatPercent))

	b.WriteString("## Prep & Cook Time\n")
	fmt.Fprintf(&b, "- Preparation: %d minutes\n", r.PrepTime)
	fmt.Fprintf(&b, "- Cooking: %d minutes\n", r.CookTime)
	fmt.Fprintf(&b, "- Total Time: %d minutes\n\n", r.TotalTime())

	b.WriteString("## Ingredients\n")
	for _, ing := range ingredients {
		fmt.Fprintf(&b, "- %s %s\n", ing.Quantity, ing.Name)
	}
	b.WriteString("\n## Instructions\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}

	b.WriteString("\n## Downloaded from Recipe Rover\n")
	fmt.Fprintf(&b, "Date: %s", date.Format(DateLayout))
	return b.String()
}

// Render scales r to servings with the default quantity list and renders it.
func Render(r *model.Recipe, servings int, date time.Time) string {
	servings = scale.ClampServings(servings)
	ratio := scale.Ratio(servings)
	return Document(r,
		scale.ScaleIngredients(r.Ingredients, ratio, nil),
		scale.ScaleNutrition(r.Nutrients, ratio),
		servings, date)
}

// Bundle renders every recipe into a single document separated by rules.
func Bundle(recipes []model.Recipe, servings int, date time.Time) string {
	parts := make([]string, 0, len(recipes))
	for i := range recipes {
		parts = append(parts, Render(&recipes[i], servings, date))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// BundleFilename is the attachment name of a Bundle download.
const BundleFilename = "recipe-rover-recipes.md"

// Filename derives the attachment name for a recipe: lower case, runs of
// whitespace replaced by a dash.
func Filename(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), unicode.IsSpace)
	if len(fields) == 0 {
		return "recipe.md"
	}
	return strings.Join(fields, "-") + "-recipe.md"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
