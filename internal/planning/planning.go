// Package planning builds the generation request for a weekly meal plan.
package planning

import (
	_ "embed"
	"strings"

	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/prompts"
	"github.com/jonathan/meal-planner/internal/types"
)

const promptFile = "mealplan.json"

// outputShape is the literal JSON shape the service is asked to return
//
//go:embed output_shape.json
var outputShape string

// DinnerCorpus is the fixed list of popular recipes the two paired dinners are drawn from.
// Order matters: it is joined into the request text as is.
var DinnerCorpus = []string{
	"Marry Me Chicken",
	"Gochujang Caramel Cookies",
	"Marry Me Chickpeas",
	"Creamy Miso Pasta",
	"Cottage Cheese Ice Cream",
	"Lasagna Soup",
	"Butter Chicken",
	"Japchae",
	"Crispy Rice Salad",
	"Salmon Rice Bowl",
	"Sheet Pan Chicken Fajitas",
	"One-Pot Chicken and Rice",
	"Thai Basil Chicken",
	"Shakshuka",
	"Honey Garlic Shrimp",
	"Greek Chicken Bowl",
	"Beef Bulgogi",
	"Cilantro Lime Chicken",
	"Teriyaki Salmon",
	"Mediterranean Chickpea Salad",
}

// OutputShape returns the JSON skeleton embedded in every request.
func OutputShape() string {
	return strings.TrimSpace(outputShape)
}

// BreakfastReference returns the fixed breakfast shopping note included in the request.
func BreakfastReference() string {
	return prompts.MustGet(promptFile, "breakfast-reference")
}

// Build validates p and renders the single user message for a plan request.
// Model and token limit come from cfg; nil uses the default config.
// The same preferences and config always produce byte-identical request text.
func Build(p types.Preferences, cfg *llm.Config) (llm.Request, error) {
	if err := preferences.Validate(p); err != nil {
		return llm.Request{}, err
	}
	if cfg == nil {
		cfg = llm.DefaultConfig()
	}

	return llm.NewUserRequest(cfg.Model, cfg.MaxTokens, buildPrompt(p)), nil
}

// buildPrompt renders the weekly plan template for already-validated preferences
func buildPrompt(p types.Preferences) string {
	template := prompts.MustGet(promptFile, "weekly-plan")
	return prompts.Format(template, map[string]string{
		"Protein":      p.Protein,
		"Carb":         p.Carb,
		"Veggie":       p.Veggie,
		"Style":        p.Style,
		"DinnerCorpus": strings.Join(DinnerCorpus, ", "),
		"Breakfast":    BreakfastReference(),
		"OutputShape":  OutputShape(),
	})
}
