package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/pantry"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/shopping"
	"github.com/jonathan/meal-planner/internal/types"
	"github.com/stretchr/testify/assert"
)

func samplePlan() *types.MealPlan {
	return &types.MealPlan{
		Lunch: types.LunchRecipe{
			Name:        "Turkey Taco Bowls",
			Serves:      types.LunchServes,
			PrepTime:    "40 minutes",
			Ingredients: []string{"turkey", "rice", "peppers", "salsa", "lime", "cilantro", "cheese"},
		},
		Dinners: []types.DinnerEntry{
			{Day: types.Monday, Name: "Lasagna Soup", Source: types.SourceNYTTop50, MealNumber: 1, CookTime: "45 minutes"},
			{Day: types.Tuesday, Name: "[Same as Monday]", IsLeftover: true, MealNumber: 1},
			{Day: types.Wednesday, Name: "Japchae", Source: types.SourceNYTTop50, MealNumber: 2},
			{Day: types.Thursday, Name: "[Same as Wednesday]", IsLeftover: true, MealNumber: 2},
			{Day: types.Friday, Name: "Egg Fried Rice", Source: types.SourceQuickEasy, MealNumber: 3},
		},
		ShoppingList: types.ShoppingList{
			WeeklyEssentials: types.WeeklyEssentials{Dairy: []string{"milk"}, Meat: []string{"ground turkey"}},
			Other:            []string{"salsa"},
		},
	}
}

func TestPrintMealPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMealPlan(samplePlan())
	output := buf.String()

	assert.Contains(t, output, "SUNDAY LUNCH PREP")
	assert.Contains(t, output, "Turkey Taco Bowls (5 lunches)")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "DINNERS")
	assert.Contains(t, output, "Lasagna Soup")
	assert.Contains(t, output, "leftovers: [Same as Monday]")
	assert.Contains(t, output, "Quick & Easy · meal 3")
}

func TestPrintMealPlan_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMealPlan(nil)

	assert.Empty(t, buf.String())
}

func TestPrintShoppingList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	checked := mealplan.CheckedItemSet{{Category: "dairy", Item: "milk"}: {}}
	p.PrintShoppingList(samplePlan().ShoppingList, checked)
	output := buf.String()

	assert.Contains(t, output, "Dairy:")
	assert.Contains(t, output, "[x] milk")
	assert.Contains(t, output, "[ ] ground turkey")
	assert.Contains(t, output, "Other:")
	assert.NotContains(t, output, "Freezer:")
}

func TestPrintShoppingList_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintShoppingList(types.ShoppingList{}, nil)

	assert.Contains(t, buf.String(), "(empty)")
}

func TestPrintPantry(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintPantry(pantry.NewTracker(nil).Items())
	output := buf.String()

	assert.Contains(t, output, "BULK STAPLES")
	assert.Regexp(t, `hemp seeds\s+stocked`, output)
	assert.Regexp(t, `granola\s+need to buy`, output)
}

func TestPrintOptionsAndLinks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintOptions(preferences.DefaultOptions())
	p.PrintShoppingLinks(shopping.Links())
	output := buf.String()

	assert.Contains(t, output, "Protein: Chicken, Beef")
	assert.Contains(t, output, "Safeway: https://www.safeway.com/")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}
