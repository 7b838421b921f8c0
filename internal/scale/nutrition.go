package scale

import (
	"math"

	"github.com/pageza/recipe-rover/backend/internal/model"
)

// Nutrition is a recipe's nutrient panel for a given serving ratio.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	ProteinPercent float64 `json:"protein_percent"`
	CarbsPercent   float64 `json:"carbs_percent"`
	FatPercent     float64 `json:"fat_percent"`
}

// ScaleNutrition rounds every macro of n multiplied by ratio and computes
// the share of protein, carbs and fat in their combined weight. A zero
// total yields zero percentages.
func ScaleNutrition(n model.Nutrients, ratio float64) Nutrition {
	out := Nutrition{
		Calories: math.Round(n.Calories * ratio),
		Protein:  math.Round(n.Protein * ratio),
		Carbs:    math.Round(n.Carbs * ratio),
		Fat:      math.Round(n.Fat * ratio),
	}
	total := out.Protein + out.Carbs + out.Fat
	if total > 0 {
		out.ProteinPercent = math.Round(out.Protein / total * 100)
		out.CarbsPercent = math.Round(out.Carbs / total * 100)
		out.FatPercent = math.Round(out.Fat / total * 100)
	}
	return out
}
