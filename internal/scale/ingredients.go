package scale

// Placeholder is rendered in place of a quantity that could not be scaled.
const Placeholder = "—"

// DefaultQuantities is the repeating list of base quantities assigned to
// ingredients by position when a recipe carries no per-ingredient amounts.
var DefaultQuantities = []string{
	"2 medium", "1 cup", "3 tablespoons", "1/2 teaspoon",
	"1 pound", "2 cloves", "1/4 cup", "1 tablespoon",
	"1 teaspoon", "3 large", "2 tablespoons", "1/2 cup",
	"1 small", "4 ounces", "1/3 cup", "1 cup",
}

// Ingredient is one scaled line of a recipe's ingredient list.
type Ingredient struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Err      error  `json:"-"`
}

// ScaleIngredients pairs every name with quantities[i % len(quantities)]
// scaled by ratio. A failing entry gets Placeholder and keeps its error;
// the rest of the list is unaffected. A nil quantities uses DefaultQuantities.
func ScaleIngredients(names []string, ratio float64, quantities []string) []Ingredient {
	if len(quantities) == 0 {
		quantities = DefaultQuantities
	}
	out := make([]Ingredient, len(names))
	for i, name := range names {
		q, err := Scale(quantities[i%len(quantities)], ratio)
		if err != nil {
			q = Placeholder
		}
		out[i] = Ingredient{Index: i, Name: name, Quantity: q, Err: err}
	}
	return out
}

// Failed returns the entries that could not be scaled.
func Failed(items []Ingredient) []Ingredient {
	var out []Ingredient
	for _, it := range items {
		if it.Err != nil {
			out = append(out, it)
		}
	}
	return out
}
