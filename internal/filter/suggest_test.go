package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestIngredients(t *testing.T) {
	all := []string{"olive oil", "red onion", "onion", "Parmesan cheese", "feta cheese", "cheese"}
	st := NewState(testBounds())
	st.AddExcludedIngredient("feta cheese")

	assert.Equal(t, []string{"red onion", "onion"}, SuggestIngredients(all, "ON", st, 5))
	assert.Equal(t, []string{"Parmesan cheese", "cheese"}, SuggestIngredients(all, "cheese", st, 5))
	assert.Equal(t, []string{"Parmesan cheese"}, SuggestIngredients(all, "cheese", st, 1))
	assert.Equal(t, []string{"olive oil", "red onion", "onion"}, SuggestIngredients(all, "  ", st, 3))
	assert.Equal(t, []string{"olive oil", "red onion", "onion", "Parmesan cheese", "cheese"}, SuggestIngredients(all, "", st, 5))
	assert.Empty(t, SuggestIngredients(all, "onion", st, 0))
	assert.Len(t, SuggestIngredients(all, "e", nil, 5), 5)
}

func TestSuggestCategories(t *testing.T) {
	cats := []string{"Cheese", "Milk", "Milk, whole", "Sweets"}
	assert.Equal(t, []string{"Milk", "Milk, whole"}, SuggestCategories(cats, "milk"))
	assert.Equal(t, cats, SuggestCategories(cats, ""))
}
