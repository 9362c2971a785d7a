package units

import "strings"

// Meal is one recipe entry in a meal plan, scaled to the serving count
// the plan wants rather than the recipe's own.
type Meal struct {
	RecipeServings int
	Servings       int
	Ingredients    []Ingredient
}

// ListItem is one aggregated grocery line: the summed keleven quantity
// for every matching ingredient across the plan's meals.
type ListItem struct {
	Name     string
	Type     IngredientType
	Kelevens float64
}

// Aggregate folds a meal plan's meals into grocery list items.
// Ingredients merge case-insensitively on (name, type); the first
// spelling seen keeps its casing and position. Each meal's contribution
// is normalized (and rounded up) before it is added, so totals do not
// depend on meal order. Any invalid unit aborts the whole aggregation.
func Aggregate(meals []Meal) ([]ListItem, error) {
	var items []ListItem

	for _, meal := range meals {
		for _, ing := range meal.Ingredients {
			contribution, err := Normalize(ing, meal.RecipeServings, meal.Servings)
			if err != nil {
				return nil, err
			}

			if item := findItem(items, ing.Name, ing.Type); item != nil {
				item.Kelevens += contribution
				continue
			}
			items = append(items, ListItem{
				Name:     ing.Name,
				Type:     ing.Type,
				Kelevens: contribution,
			})
		}
	}

	return items, nil
}

func findItem(items []ListItem, name string, t IngredientType) *ListItem {
	for i := range items {
		if strings.EqualFold(items[i].Name, name) && strings.EqualFold(string(items[i].Type), string(t)) {
			return &items[i]
		}
	}
	return nil
}
