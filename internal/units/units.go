// Package units holds the unit-of-measure registry and the pure
// quantity pipeline built on it: normalizing recipe ingredients into
// kelevens, aggregating meals into grocery totals, and rendering those
// totals back into display amounts.
//
// A keleven is the internal base quantity all volume and weight units
// convert through. The factors are an approximation scale tuned for
// grocery shopping, not exact conversions, and must not be corrected.
package units

// IngredientType partitions units. Conversion never crosses types.
type IngredientType string

const (
	TypeCount  IngredientType = "COUNT"
	TypeVolume IngredientType = "VOLUME"
	TypeWeight IngredientType = "WEIGHT"
)

// Name identifies a registered unit of measure. The zero value is the
// sentinel for count-type ingredients, which carry no unit.
type Name string

const (
	NoUnit     Name = ""
	Pinch      Name = "PINCH"
	Milliliter Name = "MILLILITER"
	Teaspoon   Name = "TEASPOON"
	Tablespoon Name = "TABLESPOON"
	FluidOunce Name = "FLUID_OUNCE"
	Cup        Name = "CUP"
	Pint       Name = "PINT"
	Quart      Name = "QUART"
	Liter      Name = "LITER"
	Gallon     Name = "GALLON"
	Gram       Name = "GRAM"
	Ounce      Name = "OUNCE"
	Pound      Name = "POUND"
	Kilogram   Name = "KILOGRAM"
)

// UnitOfMeasure is one registry entry. Kelevens is the base quantity
// one of this unit converts to.
type UnitOfMeasure struct {
	Name     Name
	Abbv     string
	Type     IngredientType
	Kelevens float64
}

// unitsOfMeasure is the fixed registry, ordered ascending by keleven
// factor within each type. The renderer's largest-unit scan depends on
// that ordering.
var unitsOfMeasure = []UnitOfMeasure{
	{Name: NoUnit, Abbv: "--", Type: TypeCount, Kelevens: 0},
	{Name: Pinch, Abbv: "pinch", Type: TypeVolume, Kelevens: 0.01},
	{Name: Milliliter, Abbv: "mL", Type: TypeVolume, Kelevens: 0.25},
	{Name: Teaspoon, Abbv: "tsp", Type: TypeVolume, Kelevens: 1},
	{Name: Tablespoon, Abbv: "tbsp", Type: TypeVolume, Kelevens: 3},
	{Name: FluidOunce, Abbv: "fl oz", Type: TypeVolume, Kelevens: 6},
	{Name: Cup, Abbv: "c", Type: TypeVolume, Kelevens: 48},
	{Name: Pint, Abbv: "pt", Type: TypeVolume, Kelevens: 96},
	{Name: Quart, Abbv: "qt", Type: TypeVolume, Kelevens: 192},
	{Name: Liter, Abbv: "L", Type: TypeVolume, Kelevens: 203},
	{Name: Gallon, Abbv: "gal", Type: TypeVolume, Kelevens: 768},
	{Name: Gram, Abbv: "g", Type: TypeWeight, Kelevens: 1},
	{Name: Ounce, Abbv: "oz", Type: TypeWeight, Kelevens: 29},
	{Name: Pound, Abbv: "lb", Type: TypeWeight, Kelevens: 454},
	{Name: Kilogram, Abbv: "kg", Type: TypeWeight, Kelevens: 1000},
}

// Lookup finds a unit by exact name. No case folding.
func Lookup(name Name) (UnitOfMeasure, bool) {
	for _, uom := range unitsOfMeasure {
		if uom.Name == name {
			return uom, true
		}
	}
	return UnitOfMeasure{}, false
}

// UnitsForType returns the units of one type, ascending by keleven
// factor.
func UnitsForType(t IngredientType) []UnitOfMeasure {
	units := make([]UnitOfMeasure, 0, len(unitsOfMeasure))
	for _, uom := range unitsOfMeasure {
		if uom.Type == t {
			units = append(units, uom)
		}
	}
	return units
}

// Abbreviation returns the display abbreviation for a unit at a given
// amount. An amount of 1 gets the bare abbreviation; other amounts go
// through the irregular pluralization table. Most abbreviations serve
// as both singular and plural.
func Abbreviation(name Name, amount float64) string {
	uom, ok := Lookup(name)
	if !ok {
		uom, _ = Lookup(NoUnit)
	}

	if amount == 1 {
		return uom.Abbv
	}

	switch uom.Abbv {
	case "--":
		return ""
	case "pinch":
		return "pinches"
	case "mL":
		return "mLs"
	case "lb":
		return "lbs"
	default:
		return uom.Abbv
	}
}
