package units

import "math"

// Amount is a display quantity. Unit is empty for count-type items.
type Amount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

// Render turns a summed keleven quantity back into a display amount.
// It picks the largest unit of the type whose factor does not exceed
// the quantity; a quantity below every threshold falls back to the
// smallest unit. The amount rounds up so the displayed purchase amount
// is never insufficient.
func Render(kelevens float64, t IngredientType) Amount {
	if t == TypeCount {
		return Amount{Amount: kelevens}
	}

	units := UnitsForType(t)
	largest := units[0]
	for _, u := range units {
		if kelevens >= u.Kelevens {
			largest = u
		}
	}

	amount := math.Ceil(kelevens / largest.Kelevens)
	return Amount{
		Amount: amount,
		Unit:   Abbreviation(largest.Name, amount),
	}
}
