package units

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateMergesCaseInsensitively(t *testing.T) {
	meals := []Meal{
		{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
			{Name: "Salt", Amount: 1, Type: TypeVolume, Unit: Teaspoon},
		}},
		{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
			{Name: "salt", Amount: 1, Type: TypeVolume, Unit: Teaspoon},
		}},
	}

	items, err := Aggregate(meals)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// First spelling seen keeps its casing.
	assert.Equal(t, "Salt", items[0].Name)
	assert.Equal(t, 2.0, items[0].Kelevens)
}

func TestAggregateKeepsDistinctTypesApart(t *testing.T) {
	// Same name, different type: two separate items.
	meals := []Meal{
		{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
			{Name: "ginger", Amount: 1, Type: TypeVolume, Unit: Teaspoon},
			{Name: "ginger", Amount: 30, Type: TypeWeight, Unit: Gram},
		}},
	}

	items, err := Aggregate(meals)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAggregateCeilsPerMealContribution(t *testing.T) {
	// Each meal contributes ceil(0.5) = 1, so the total is 2, not
	// ceil(0.5 + 0.5) = 1.
	meal := Meal{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
		{Name: "vanilla", Amount: 0.5, Type: TypeVolume, Unit: Teaspoon},
	}}

	items, err := Aggregate([]Meal{meal, meal})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2.0, items[0].Kelevens)
}

func TestAggregateOrderIndependentTotals(t *testing.T) {
	meals := []Meal{
		{RecipeServings: 2, Servings: 4, Ingredients: []Ingredient{
			{Name: "flour", Amount: 1, Type: TypeWeight, Unit: Pound},
			{Name: "Sugar", Amount: 1, Type: TypeVolume, Unit: Cup},
		}},
		{RecipeServings: 1, Servings: 2, Ingredients: []Ingredient{
			{Name: "sugar", Amount: 2, Type: TypeVolume, Unit: Tablespoon},
		}},
		{RecipeServings: 3, Servings: 1, Ingredients: []Ingredient{
			{Name: "FLOUR", Amount: 200, Type: TypeWeight, Unit: Gram},
		}},
	}

	want := totalsByKey(t, meals)

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]Meal, len(meals))
		copy(shuffled, meals)
		rand.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, totalsByKey(t, shuffled))
	}
}

func totalsByKey(t *testing.T, meals []Meal) map[string]float64 {
	t.Helper()

	items, err := Aggregate(meals)
	require.NoError(t, err)

	totals := make(map[string]float64, len(items))
	for _, item := range items {
		totals[strings.ToLower(item.Name)+"/"+strings.ToLower(string(item.Type))] = item.Kelevens
	}
	return totals
}

func TestAggregateAbortsOnInvalidUnit(t *testing.T) {
	meals := []Meal{
		{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
			{Name: "salt", Amount: 1, Type: TypeVolume, Unit: Teaspoon},
		}},
		{RecipeServings: 1, Servings: 1, Ingredients: []Ingredient{
			{Name: "flour", Amount: 1, Type: TypeWeight, Unit: "HANDFUL"},
		}},
	}

	items, err := Aggregate(meals)
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.Nil(t, items)
}

func TestAggregateEmptyPlan(t *testing.T) {
	items, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
