// Package preferences checks quiz answers before a plan request is built.
package preferences

import (
	"strings"

	"github.com/jonathan/meal-planner/internal/types"
)

// IncompleteMessage is the ValidationError message for missing answers
const IncompleteMessage = "incomplete preferences"

var validate = types.NewValidator()

// Options lists the choices the quiz offers for each preference field.
// Membership is not enforced; adapters use it for display and help text.
type Options struct {
	Protein []string `json:"protein"`
	Carb    []string `json:"carb"`
	Veggie  []string `json:"veggie"`
	Style   []string `json:"style"`
}

// DefaultOptions returns the quiz option table
func DefaultOptions() Options {
	return Options{
		Protein: []string{"Chicken", "Beef", "Pork", "Salmon", "Shrimp", "Tofu", "Chickpeas", "Turkey"},
		Carb:    []string{"Rice", "Quinoa", "Pasta", "Sweet Potato", "Regular Potato", "Couscous", "Tortillas", "Bread"},
		Veggie:  []string{"Broccoli", "Bell Peppers", "Spinach", "Kale", "Carrots", "Zucchini", "Green Beans", "Cauliflower"},
		Style:   []string{"Mexican", "Asian", "Mediterranean", "Italian", "American", "Indian", "Thai", "Bowl/Salad"},
	}
}

// Normalize trims surrounding whitespace from every field
func Normalize(p types.Preferences) types.Preferences {
	return types.Preferences{
		Protein: strings.TrimSpace(p.Protein),
		Carb:    strings.TrimSpace(p.Carb),
		Veggie:  strings.TrimSpace(p.Veggie),
		Style:   strings.TrimSpace(p.Style),
	}
}

// Validate succeeds only when all four fields are non-blank.
// On failure it returns a *types.ValidationError naming the missing fields.
func Validate(p types.Preferences) error {
	return types.ValidateStruct(validate, Normalize(p), IncompleteMessage)
}
