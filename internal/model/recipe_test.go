package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBStringArrayRoundTrip(t *testing.T) {
	v, err := JSONBStringArray{"egg", "salt"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["egg","salt"]`, v)

	empty, err := JSONBStringArray(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)

	var a JSONBStringArray
	require.NoError(t, a.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, JSONBStringArray{"a", "b"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Empty(t, a)

	assert.Error(t, a.Scan(42))
}

func TestParseMacro(t *testing.T) {
	m, err := ParseMacro(" Protein ")
	require.NoError(t, err)
	assert.Equal(t, Protein, m)

	_, err = ParseMacro("fiber")
	assert.Error(t, err)
}

func TestRecipeValidate(t *testing.T) {
	r := Recipe{
		ID:           1,
		Name:         "Toast",
		Ingredients:  JSONBStringArray{"bread"},
		Instructions: JSONBStringArray{"toast it"},
		Nutrients:    Nutrients{Calories: 100},
	}
	assert.NoError(t, r.Validate())
	assert.Equal(t, 0, r.TotalTime())

	r.Instructions = nil
	r.Nutrients.Fat = -1
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instruction")
	assert.Contains(t, err.Error(), "fat must not be negative")
}

func TestNutrientsValidateRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		n    Nutrients
		want string
	}{
		{"nan calories", Nutrients{Calories: math.NaN()}, "calories must be a finite number"},
		{"infinite protein", Nutrients{Protein: math.Inf(1)}, "protein must be a finite number"},
		{"negative infinite carbs", Nutrients{Carbs: math.Inf(-1)}, "carbs must be a finite number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.NoError(t, Nutrients{Calories: 250, Protein: 10}.Validate())
}
