package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCountPassesThrough(t *testing.T) {
	got := Render(3, TypeCount)
	assert.Equal(t, Amount{Amount: 3}, got)
}

func TestRenderPicksLargestFittingUnit(t *testing.T) {
	tests := []struct {
		kelevens float64
		typ      IngredientType
		want     Amount
	}{
		{1, TypeVolume, Amount{Amount: 1, Unit: "tsp"}},
		{96, TypeVolume, Amount{Amount: 1, Unit: "pt"}},
		{50, TypeVolume, Amount{Amount: 2, Unit: "c"}},
		{8, TypeVolume, Amount{Amount: 2, Unit: "fl oz"}},
		{203, TypeVolume, Amount{Amount: 1, Unit: "L"}},
		{30, TypeWeight, Amount{Amount: 2, Unit: "oz"}},
		{454, TypeWeight, Amount{Amount: 1, Unit: "lb"}},
		{908, TypeWeight, Amount{Amount: 2, Unit: "lbs"}},
		{1816, TypeWeight, Amount{Amount: 2, Unit: "kg"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.kelevens, tt.typ),
			"Render(%v, %s)", tt.kelevens, tt.typ)
	}
}

func TestRenderFallsBackToSmallestUnit(t *testing.T) {
	// Below every threshold the smallest unit still applies.
	got := Render(0.005, TypeVolume)
	assert.Equal(t, Amount{Amount: 1, Unit: "pinch"}, got)

	got = Render(0.5, TypeWeight)
	assert.Equal(t, Amount{Amount: 1, Unit: "g"}, got)
}

func TestRenderNeverUnderRenders(t *testing.T) {
	// The rendered amount always covers the underlying quantity.
	quantities := []float64{0.003, 0.01, 0.26, 1, 2.5, 5, 47, 48, 95, 100, 203, 500, 767, 768, 2000}
	for _, typ := range []IngredientType{TypeVolume, TypeWeight} {
		for _, q := range quantities {
			got := Render(q, typ)

			var chosen UnitOfMeasure
			found := false
			for _, u := range UnitsForType(typ) {
				if Abbreviation(u.Name, got.Amount) == got.Unit {
					chosen = u
					found = true
					break
				}
			}
			require.True(t, found, "Render(%v, %s) chose unknown unit %q", q, typ, got.Unit)
			assert.GreaterOrEqual(t, got.Amount*chosen.Kelevens, q,
				"Render(%v, %s) under-renders", q, typ)
		}
	}
}

// The flagship flow: 1 lb of flour for 2 servings, planned twice at 4
// servings each, totals 1816 kelevens and is shown as a whole number of
// the largest fitting weight unit.
func TestGroceryAmountForDoubledMeal(t *testing.T) {
	meal := Meal{
		RecipeServings: 2,
		Servings:       4,
		Ingredients: []Ingredient{
			{Name: "flour", Amount: 1, Type: TypeWeight, Unit: Pound},
		},
	}

	items, err := Aggregate([]Meal{meal, meal})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1816.0, items[0].Kelevens)

	assert.Equal(t, Amount{Amount: 2, Unit: "kg"}, Render(items[0].Kelevens, TypeWeight))
}
