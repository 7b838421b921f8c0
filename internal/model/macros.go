package model

import (
	"fmt"
	"math"
	"strings"
)

// Macro names one of the four tracked nutrients.
type Macro string

const (
	Calories Macro = "calories"
	Protein  Macro = "protein"
	Carbs    Macro = "carbs"
	Fat      Macro = "fat"
)

// AllMacros lists the macros in display order.
var AllMacros = []Macro{Calories, Protein, Carbs, Fat}

// ParseMacro converts a user supplied name into a Macro.
func ParseMacro(s string) (Macro, error) {
	m := Macro(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Calories, Protein, Carbs, Fat:
		return m, nil
	}
	return "", fmt.Errorf("unknown nutrient %q", s)
}

// Nutrients represents nutrition information for a recipe.
type Nutrients struct {
	Calories float64 `gorm:"column:calories" json:"calories"`
	Protein  float64 `gorm:"column:protein" json:"protein"`
	Carbs    float64 `gorm:"column:carbs" json:"carbs"`
	Fat      float64 `gorm:"column:fat" json:"fat"`
}

// Value returns the amount stored for m.
func (n Nutrients) Value(m Macro) float64 {
	switch m {
	case Calories:
		return n.Calories
	case Protein:
		return n.Protein
	case Carbs:
		return n.Carbs
	case Fat:
		return n.Fat
	}
	return 0
}

// Validate rejects negative and non-finite values.
func (n Nutrients) Validate() error {
	for _, m := range AllMacros {
		v := n.Value(m)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", m, v)
		}
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", m, v)
		}
	}
	return nil
}
