package filter

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-rover/backend/internal/model"
)

func testBounds() Bounds {
	return Bounds{
		model.Calories: {Min: 220, Max: 580},
		model.Protein:  {Min: 8, Max: 35},
		model.Carbs:    {Min: 10, Max: 58},
		model.Fat:      {Min: 4, Max: 32},
	}
}

func TestNewStateSpansBounds(t *testing.T) {
	st := NewState(testBounds())
	for m, r := range testBounds() {
		assert.Equal(t, r, st.Nutrients[m])
	}
	assert.Empty(t, st.Tags)
	assert.NotNil(t, st.Tags)
}

func TestSetNutrientMinPullsMaxUp(t *testing.T) {
	st := NewState(testBounds())
	require.NoError(t, st.SetNutrientMax(model.Calories, 300))
	require.NoError(t, st.SetNutrientMin(model.Calories, 450))

	assert.Equal(t, Range{Min: 450, Max: 450}, st.Nutrients[model.Calories])
}

func TestSetNutrientMaxPullsMinDown(t *testing.T) {
	st := NewState(testBounds())
	require.NoError(t, st.SetNutrientMin(model.Protein, 30))
	require.NoError(t, st.SetNutrientMax(model.Protein, 12))

	assert.Equal(t, Range{Min: 12, Max: 12}, st.Nutrients[model.Protein])
}

func TestRangeSettersClampToBounds(t *testing.T) {
	st := NewState(testBounds())
	require.NoError(t, st.SetNutrientMin(model.Fat, -10))
	require.NoError(t, st.SetNutrientMax(model.Fat, 1000))
	assert.Equal(t, Range{Min: 4, Max: 32}, st.Nutrients[model.Fat])

	require.NoError(t, st.SetNutrientMin(model.Fat, 1000))
	assert.Equal(t, Range{Min: 32, Max: 32}, st.Nutrients[model.Fat])
}

func TestSetNutrientRangeReordersInvertedPair(t *testing.T) {
	st := NewState(testBounds())
	require.NoError(t, st.SetNutrientRange(model.Carbs, 50, 20))
	assert.Equal(t, Range{Min: 20, Max: 50}, st.Nutrients[model.Carbs])
}

func TestRangeSettersIgnoreNaN(t *testing.T) {
	st := NewState(testBounds())
	require.NoError(t, st.SetNutrientMin(model.Carbs, math.NaN()))
	require.NoError(t, st.SetNutrientRange(model.Carbs, math.NaN(), 30))
	assert.Equal(t, testBounds()[model.Carbs], st.Nutrients[model.Carbs])
}

func TestRangeSetterUnknownMacro(t *testing.T) {
	st := NewState(testBounds())
	err := st.SetNutrientMin(model.Macro("fiber"), 1)
	assert.True(t, errors.Is(err, ErrUnknownMacro))
}

func TestRangeInvariantUnderRandomSetters(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	st := NewState(testBounds())

	for i := 0; i < 5000; i++ {
		m := model.AllMacros[rng.Intn(len(model.AllMacros))]
		v := rng.Float64()*1400 - 400
		switch rng.Intn(3) {
		case 0:
			require.NoError(t, st.SetNutrientMin(m, v))
		case 1:
			require.NoError(t, st.SetNutrientMax(m, v))
		default:
			require.NoError(t, st.SetNutrientRange(m, v, rng.Float64()*1400-400))
		}

		for macro, r := range st.Nutrients {
			abs := testBounds()[macro]
			require.LessOrEqual(t, r.Min, r.Max, "iteration %d macro %s", i, macro)
			require.GreaterOrEqual(t, r.Min, abs.Min)
			require.LessOrEqual(t, r.Max, abs.Max)
		}
	}
}

func TestResetRestoresInitialSnapshot(t *testing.T) {
	st := NewState(testBounds())
	initial := st.Clone()

	st.SetSearch("toast")
	st.ToggleTag("Vegan")
	st.ToggleCategory("Cheese")
	st.AddIncludedIngredient("egg")
	st.AddExcludedIngredient("nuts")
	require.NoError(t, st.SetNutrientRange(model.Fat, 10, 12))
	assert.True(t, st.Active())

	st.Reset()
	assert.Equal(t, initial, st)
	assert.False(t, st.Active())
}

func TestSetOperations(t *testing.T) {
	st := NewState(testBounds())

	st.SetTags([]string{"Vegan", " Vegan ", "", "Dinner"})
	assert.Equal(t, []string{"Vegan", "Dinner"}, st.Tags)

	st.ToggleTag("Vegan")
	assert.Equal(t, []string{"Dinner"}, st.Tags)
	st.ToggleTag("Lunch")
	assert.Equal(t, []string{"Dinner", "Lunch"}, st.Tags)

	st.AddIncludedIngredient("Garlic")
	st.AddIncludedIngredient("garlic")
	assert.Equal(t, []string{"Garlic"}, st.IncludedIngredients)
	st.RemoveIncludedIngredient("GARLIC")
	assert.Empty(t, st.IncludedIngredients)

	st.SetExcludedIngredients([]string{"nuts", "NUTS", "shrimp"})
	assert.Equal(t, []string{"nuts", "shrimp"}, st.ExcludedIngredients)
	st.RemoveExcludedIngredient("nuts")
	assert.Equal(t, []string{"shrimp"}, st.ExcludedIngredients)
}

func TestCloneIsDeep(t *testing.T) {
	st := NewState(testBounds())
	st.SetTags([]string{"Vegan"})
	c := st.Clone()

	c.Tags[0] = "changed"
	require.NoError(t, c.SetNutrientMin(model.Fat, 20))

	assert.Equal(t, "Vegan", st.Tags[0])
	assert.Equal(t, 4.0, st.Nutrients[model.Fat].Min)
}

func TestZeroStateRejectsRangeSetters(t *testing.T) {
	var st State
	err := st.SetNutrientMin(model.Fat, 1)
	assert.True(t, errors.Is(err, ErrUnknownMacro))
	assert.False(t, st.Active())
}

func TestComputeBoundsEmpty(t *testing.T) {
	b := ComputeBounds(nil)
	assert.Len(t, b, 4)
	assert.Equal(t, Range{}, b[model.Calories])
}
