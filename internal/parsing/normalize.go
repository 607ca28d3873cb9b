package parsing

import (
	"strings"

	"github.com/jonathan/meal-planner/internal/types"
)

// normalizePlan tidies text fields of a plan that already passed validation.
// Shopping list items are trimmed and deduplicated per category because the
// checklist addresses them by (category, item).
func normalizePlan(plan *types.MealPlan) {
	plan.Lunch.Name = strings.TrimSpace(plan.Lunch.Name)
	if strings.TrimSpace(plan.Lunch.Serves) == "" {
		plan.Lunch.Serves = types.LunchServes
	}
	plan.Lunch.Ingredients = normalizeItems(plan.Lunch.Ingredients)

	for i := range plan.Dinners {
		plan.Dinners[i].Name = strings.TrimSpace(plan.Dinners[i].Name)
		plan.Dinners[i].Ingredients = normalizeItems(plan.Dinners[i].Ingredients)
	}

	list := &plan.ShoppingList
	list.WeeklyEssentials.Dairy = normalizeItems(list.WeeklyEssentials.Dairy)
	list.WeeklyEssentials.Produce = normalizeItems(list.WeeklyEssentials.Produce)
	list.WeeklyEssentials.Meat = normalizeItems(list.WeeklyEssentials.Meat)
	list.BulkOptions.Pantry = normalizeItems(list.BulkOptions.Pantry)
	list.BulkOptions.Freezer = normalizeItems(list.BulkOptions.Freezer)
	list.BulkOptions.Cheese = normalizeItems(list.BulkOptions.Cheese)
	list.Other = normalizeItems(list.Other)
}

// normalizeItems trims entries, drops blanks and exact duplicates, and keeps order.
// The result is never nil.
func normalizeItems(items []string) []string {
	normalized := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		normalized = append(normalized, item)
	}
	return normalized
}
