// Package types provides type definitions for structured data used throughout the meal planner.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Weekday names a dinner night. Only the five working days are planned.
type Weekday string

// Weekday constants in plan order
const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// Weekdays is the fixed order of the dinners array.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

// DinnerSource tags where a dinner recipe comes from
type DinnerSource string

// DinnerSource constants accepted in generated plans
const (
	SourceNYTTop50  DinnerSource = "NYT Top 50"
	SourceQuickEasy DinnerSource = "Quick & Easy"
)

const (
	// LunchServes is the fixed serving count of the prep lunch
	LunchServes = "5 lunches"
	// UnpairedMealNumber is the Friday quick dinner, which has no leftover night
	UnpairedMealNumber = 3
)

// Preferences are the four lunch-prep choices made in the quiz
type Preferences struct {
	Protein string `json:"protein" validate:"required"`
	Carb    string `json:"carb" validate:"required"`
	Veggie  string `json:"veggie" validate:"required"`
	Style   string `json:"style" validate:"required"`
}

// LunchRecipe is the single meal-prep lunch cooked once and eaten Monday to Friday
type LunchRecipe struct {
	Name               string   `json:"name"`
	RecipeURL          string   `json:"recipeUrl"`
	Serves             string   `json:"serves"`
	Ingredients        []string `json:"ingredients"`
	Instructions       string   `json:"instructions"`
	PrepTime           string   `json:"prepTime"`
	NutritionHighlight string   `json:"nutritionHighlight"`
}

// DinnerEntry is one night of the dinner schedule.
// Entries sharing a MealNumber (1 or 2) are a cook night followed by a leftover night.
type DinnerEntry struct {
	Day                Weekday      `json:"day"`
	Name               string       `json:"name"`
	RecipeURL          string       `json:"recipeUrl"`
	IsLeftover         bool         `json:"isLeftover"`
	Serves             string       `json:"serves"`
	Source             DinnerSource `json:"source"`
	MealNumber         int          `json:"mealNumber"`
	Ingredients        []string     `json:"ingredients"`
	Instructions       string       `json:"instructions"`
	CookTime           string       `json:"cookTime"`
	NutritionHighlight string       `json:"nutritionHighlight"`
}

// WeeklyEssentials are the items bought fresh every week
type WeeklyEssentials struct {
	Dairy   []string `json:"dairy"`
	Produce []string `json:"produce"`
	Meat    []string `json:"meat"`
}

// BulkOptions are items worth buying ahead and stocking
type BulkOptions struct {
	Pantry  []string `json:"pantry"`
	Freezer []string `json:"freezer"`
	Cheese  []string `json:"cheese"`
}

// ShoppingList groups the ingredients needed for a plan
type ShoppingList struct {
	WeeklyEssentials WeeklyEssentials `json:"weeklyEssentials"`
	BulkOptions      BulkOptions      `json:"bulkOptions"`
	Other            []string         `json:"other"`
}

// Category is one named line group of the shopping list
type Category struct {
	Name  string
	Items []string
}

// Categories flattens the list in display order. Category names are the keys used by the checklist.
func (s ShoppingList) Categories() []Category {
	return []Category{
		{Name: "dairy", Items: s.WeeklyEssentials.Dairy},
		{Name: "produce", Items: s.WeeklyEssentials.Produce},
		{Name: "meat", Items: s.WeeklyEssentials.Meat},
		{Name: "pantry", Items: s.BulkOptions.Pantry},
		{Name: "freezer", Items: s.BulkOptions.Freezer},
		{Name: "cheese", Items: s.BulkOptions.Cheese},
		{Name: "other", Items: s.Other},
	}
}

// MealPlan is the full weekly result returned by the generation service
type MealPlan struct {
	Lunch        LunchRecipe   `json:"lunch"`
	Dinners      []DinnerEntry `json:"dinners"`
	ShoppingList ShoppingList  `json:"shoppingList"`
}

// Dinner returns the entry planned for day, if any.
func (p *MealPlan) Dinner(day Weekday) (DinnerEntry, bool) {
	for _, d := range p.Dinners {
		if d.Day == day {
			return d, true
		}
	}
	return DinnerEntry{}, false
}
