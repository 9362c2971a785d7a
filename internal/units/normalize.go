package units

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidUnit reports a unit that is unregistered or belongs to
	// a different ingredient type than the ingredient claims.
	ErrInvalidUnit = errors.New("invalid unit of measure")

	// ErrInvalidAmount reports a non-positive ingredient amount.
	ErrInvalidAmount = errors.New("invalid ingredient amount")
)

// Ingredient is one recipe ingredient line as the quantity pipeline
// sees it. Unit is ignored for count-type ingredients.
type Ingredient struct {
	Name   string
	Amount float64
	Type   IngredientType
	Unit   Name
}

// Normalize converts one ingredient, scaled from the recipe's serving
// count to the requested one, into whole kelevens. The result is always
// rounded up: it drives how much to buy, and under-purchasing must
// never occur. A requested serving count of 0 yields 0.
func Normalize(ing Ingredient, recipeServings, requestedServings int) (float64, error) {
	if ing.Amount <= 0 {
		return 0, fmt.Errorf("%w: %q has amount %v", ErrInvalidAmount, ing.Name, ing.Amount)
	}

	var perServing float64
	if ing.Type == TypeCount {
		perServing = ing.Amount / float64(recipeServings)
	} else {
		uom, ok := Lookup(ing.Unit)
		if !ok || uom.Type != ing.Type {
			return 0, fmt.Errorf("%w: %q for type %s", ErrInvalidUnit, ing.Unit, ing.Type)
		}
		perServing = ing.Amount * uom.Kelevens / float64(recipeServings)
	}

	return math.Ceil(perServing * float64(requestedServings)), nil
}
