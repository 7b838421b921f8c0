package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleIngredientsKeepsGoingPastFailures(t *testing.T) {
	names := []string{"flour", "sugar", "eggs"}
	got := ScaleIngredients(names, 2, []string{"1 cup", "abc"})

	require.Len(t, got, 3)
	assert.Equal(t, Ingredient{Index: 0, Name: "flour", Quantity: "2 cup"}, got[0])
	assert.Equal(t, Placeholder, got[1].Quantity)
	assert.Equal(t, "sugar", got[1].Name)
	assert.Error(t, got[1].Err)
	assert.Equal(t, "2 cup", got[2].Quantity)

	failed := Failed(got)
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Index)
}

func TestScaleIngredientsDefaultQuantities(t *testing.T) {
	names := make([]string, 17)
	for i := range names {
		names[i] = "item"
	}
	got := ScaleIngredients(names, 1, nil)

	require.Len(t, got, 17)
	assert.Equal(t, "2 medium", got[0].Quantity)
	assert.Equal(t, "1/2 teaspoon", got[3].Quantity)
	assert.Equal(t, "2 medium", got[16].Quantity)
	assert.Empty(t, Failed(got))
}

func TestScaleIngredientsEmpty(t *testing.T) {
	assert.Empty(t, ScaleIngredients(nil, 1, nil))
}
