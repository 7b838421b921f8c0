package scale

import "github.com/pageza/recipe-rover/backend/internal/model"

// BaseServings is the serving count stored quantities and nutrients refer to.
const BaseServings = model.BaseServings

// ClampServings enforces the minimum of one serving.
func ClampServings(n int) int {
	return max(n, 1)
}

// AdjustServings applies a stepper delta to the current serving count.
func AdjustServings(current, delta int) int {
	return ClampServings(current + delta)
}

// Ratio returns the multiplier for servings relative to BaseServings.
func Ratio(servings int) float64 {
	return float64(ClampServings(servings)) / float64(BaseServings)
}
