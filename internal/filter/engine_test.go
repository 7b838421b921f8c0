package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-rover/backend/internal/catalog"
	"github.com/pageza/recipe-rover/backend/internal/filter"
	"github.com/pageza/recipe-rover/backend/internal/model"
)

func sampleState(t *testing.T) ([]model.Recipe, *filter.State) {
	t.Helper()
	recipes := catalog.SampleRecipes()
	return recipes, filter.NewState(filter.ComputeBounds(recipes))
}

func ids(recipes []model.Recipe) []uint {
	out := make([]uint, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestApplyDefaultStateKeepsEverything(t *testing.T) {
	recipes, st := sampleState(t)
	got := filter.Apply(recipes, st)
	assert.Equal(t, ids(recipes), ids(got))
	assert.False(t, st.Active())
}

func TestApplyScenarios(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(t *testing.T, st *filter.State)
		want   []uint
	}{
		{
			name:   "search is case-insensitive on name",
			mutate: func(t *testing.T, st *filter.State) { st.SetSearch("quinoa") },
			want:   []uint{2},
		},
		{
			name:   "search ignores description",
			mutate: func(t *testing.T, st *filter.State) { st.SetSearch("feta") },
			want:   []uint{},
		},
		{
			name:   "tags match any selected tag",
			mutate: func(t *testing.T, st *filter.State) { st.SetTags([]string{"Vegan", "Seafood"}) },
			want:   []uint{4, 5, 6},
		},
		{
			name:   "tags are exact",
			mutate: func(t *testing.T, st *filter.State) { st.SetTags([]string{"vegan"}) },
			want:   []uint{},
		},
		{
			name:   "categories",
			mutate: func(t *testing.T, st *filter.State) { st.SetCategories([]string{"Cereal Grains and Pasta"}) },
			want:   []uint{2, 10},
		},
		{
			name: "calorie range",
			mutate: func(t *testing.T, st *filter.State) {
				require.NoError(t, st.SetNutrientRange(model.Calories, 300, 400))
			},
			want: []uint{1, 2},
		},
		{
			name: "range bounds are inclusive",
			mutate: func(t *testing.T, st *filter.State) {
				require.NoError(t, st.SetNutrientRange(model.Fat, 24, 25))
			},
			want: []uint{3, 5},
		},
		{
			name:   "excluded ingredient",
			mutate: func(t *testing.T, st *filter.State) { st.SetExcludedIngredients([]string{"chicken"}) },
			want:   []uint{1, 2, 4, 5, 6, 7, 8, 9, 10},
		},
		{
			name:   "included ingredients need every term",
			mutate: func(t *testing.T, st *filter.State) { st.SetIncludedIngredients([]string{"GARLIC", "ginger"}) },
			want:   []uint{3, 6},
		},
		{
			name:   "included ingredient matches substrings",
			mutate: func(t *testing.T, st *filter.State) { st.SetIncludedIngredients([]string{"cheese"}) },
			want:   []uint{2, 7, 10},
		},
		{
			name: "facets combine with AND",
			mutate: func(t *testing.T, st *filter.State) {
				st.SetTags([]string{"Vegetarian"})
				st.SetIncludedIngredients([]string{"olive oil"})
				st.SetExcludedIngredients([]string{"feta"})
			},
			want: []uint{9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipes, st := sampleState(t)
			tt.mutate(t, st)
			got := filter.Apply(recipes, st)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyIsPureAndIdempotent(t *testing.T) {
	recipes, st := sampleState(t)
	st.SetTags([]string{"Dinner", "Breakfast"})
	require.NoError(t, st.SetNutrientMax(model.Carbs, 45))
	before := ids(recipes)

	once := filter.Apply(recipes, st)
	twice := filter.Apply(once, st)

	assert.Equal(t, ids(once), ids(twice))
	assert.Equal(t, before, ids(recipes))
}

func TestApplyNilState(t *testing.T) {
	recipes, _ := sampleState(t)
	assert.Len(t, filter.Apply(recipes, nil), len(recipes))
	assert.Empty(t, filter.Apply(nil, nil))
}

func TestNarrowingNeverGrowsResults(t *testing.T) {
	recipes, st := sampleState(t)
	steps := []func(){
		func() { st.ToggleTag("Vegetarian") },
		func() { _ = st.SetNutrientMin(model.Calories, 250) },
		func() { st.AddExcludedIngredient("honey") },
		func() { _ = st.SetNutrientMax(model.Fat, 20) },
		func() { st.AddIncludedIngredient("olive") },
		func() { st.SetSearch("a") },
	}

	prev := len(filter.Apply(recipes, st))
	for i, step := range steps {
		step()
		n := len(filter.Apply(recipes, st))
		assert.LessOrEqual(t, n, prev, "step %d widened the result", i)
		prev = n
	}
}

func TestAndComposition(t *testing.T) {
	recipes, base := sampleState(t)

	f1 := base.Clone()
	f1.SetTags([]string{"Vegetarian"})
	f2 := base.Clone()
	require.NoError(t, f2.SetNutrientRange(model.Calories, 250, 400))

	both := f1.Clone()
	require.NoError(t, both.SetNutrientRange(model.Calories, 250, 400))

	r1 := ids(filter.Apply(recipes, f1))
	r2 := ids(filter.Apply(recipes, f2))
	for _, id := range ids(filter.Apply(recipes, both)) {
		assert.Contains(t, r1, id)
		assert.Contains(t, r2, id)
	}
}
