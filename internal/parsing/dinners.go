package parsing

import (
	"fmt"

	"github.com/jonathan/meal-planner/internal/types"
)

// checkDinners enforces the weekly schedule rules the schema cannot express:
// Monday..Friday in order, meals 1 and 2 each cooked once and eaten once as leftovers
// on a later night, and meal 3 cooked once on Friday from the quick and easy list
// with no leftover night.
func checkDinners(dinners []types.DinnerEntry) []string {
	var details []string

	if len(dinners) != len(types.Weekdays) {
		return []string{fmt.Sprintf("dinners: expected %d entries, got %d", len(types.Weekdays), len(dinners))}
	}

	cooked := make(map[int]bool)
	leftovers := make(map[int]int)

	for i, d := range dinners {
		field := fmt.Sprintf("dinners[%d]", i)

		if d.Day != types.Weekdays[i] {
			details = append(details, fmt.Sprintf("%s.day: expected %s, got %s", field, types.Weekdays[i], d.Day))
		}

		switch {
		case d.MealNumber == types.UnpairedMealNumber && d.IsLeftover:
			details = append(details, fmt.Sprintf("%s: meal %d has no leftover night", field, d.MealNumber))
		case d.IsLeftover && !cooked[d.MealNumber]:
			details = append(details, fmt.Sprintf("%s: leftover of meal %d comes before it is cooked", field, d.MealNumber))
		case d.IsLeftover:
			leftovers[d.MealNumber]++
		case cooked[d.MealNumber]:
			details = append(details, fmt.Sprintf("%s: meal %d is cooked more than once", field, d.MealNumber))
		default:
			cooked[d.MealNumber] = true
		}

		if d.MealNumber == types.UnpairedMealNumber && !d.IsLeftover {
			if d.Day != types.Friday {
				details = append(details, fmt.Sprintf("%s: meal %d is the Friday dinner, got %s", field, d.MealNumber, d.Day))
			}
			if d.Source != types.SourceQuickEasy {
				details = append(details, fmt.Sprintf("%s.source: meal %d must be %s, got %q", field, d.MealNumber, types.SourceQuickEasy, d.Source))
			}
		}
	}

	for meal := 1; meal <= types.UnpairedMealNumber; meal++ {
		if !cooked[meal] {
			details = append(details, fmt.Sprintf("dinners: meal %d is never cooked", meal))
		}
	}
	for meal := 1; meal < types.UnpairedMealNumber; meal++ {
		if cooked[meal] && leftovers[meal] != 1 {
			details = append(details, fmt.Sprintf("dinners: meal %d needs exactly one leftover night, got %d", meal, leftovers[meal]))
		}
	}

	return details
}
