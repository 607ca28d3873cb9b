// Package app wires the planner's stores together and exposes the commands
// the CLI, HTTP server and Telegram bot call.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/meal-planner/internal/generation"
	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/pantry"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/ratings"
	"github.com/jonathan/meal-planner/internal/shopping"
	"github.com/jonathan/meal-planner/internal/types"
)

// GenerationFailedMessage is the single message shown for any failed generation
const GenerationFailedMessage = "Failed to generate meal plan. Please try again."

var (
	// ErrNoPlan is returned by commands that need a generated plan
	ErrNoPlan = errors.New("no meal plan has been generated yet")
	// ErrStalePlan is returned when a command refers to a plan that has since been replaced
	ErrStalePlan = errors.New("meal plan has been replaced")
)

// App is the application context shared by every adapter
type App struct {
	Flow    *generation.Flow
	Plans   *mealplan.Store
	Pantry  *pantry.Tracker
	Ratings *ratings.Archive
}

// Options configures New
type Options struct {
	LLMConfig    *llm.Config
	BulkItems    map[string]bool
	RatingsClock ratings.Option
}

// New creates an App around client
func New(client llm.Client, opts Options) *App {
	plans := mealplan.NewStore()

	var archiveOpts []ratings.Option
	if opts.RatingsClock != nil {
		archiveOpts = append(archiveOpts, opts.RatingsClock)
	}

	return &App{
		Flow:    generation.NewFlow(client, opts.LLMConfig, plans),
		Plans:   plans,
		Pantry:  pantry.NewTracker(opts.BulkItems),
		Ratings: ratings.NewArchive(archiveOpts...),
	}
}

// PlanView is the current plan with its checked shopping items
type PlanView struct {
	Plan    *types.MealPlan    `json:"plan"`
	Checked []mealplan.ItemKey `json:"checked"`
}

// GeneratePlan requests a new plan for p and makes it current
func (a *App) GeneratePlan(ctx context.Context, p types.Preferences) (*types.MealPlan, error) {
	return a.Flow.Generate(ctx, p)
}

// CancelGeneration aborts the in-flight generation and reports whether there was one
func (a *App) CancelGeneration() bool {
	return a.Flow.Cancel()
}

// CurrentPlan returns the plan and its checklist sorted by category then item
func (a *App) CurrentPlan() (*PlanView, error) {
	plan, ok := a.Plans.Current()
	if !ok {
		return nil, ErrNoPlan
	}

	checked := a.Plans.Checked().Keys()
	sort.Slice(checked, func(i, j int) bool {
		if checked[i].Category != checked[j].Category {
			return checked[i].Category < checked[j].Category
		}
		return checked[i].Item < checked[j].Item
	})
	return &PlanView{Plan: plan, Checked: checked}, nil
}

// ToggleShoppingItem flips an item of the current plan's shopping list.
// The item must appear in that category of the current plan.
func (a *App) ToggleShoppingItem(category, item string) (bool, error) {
	plan, ok := a.Plans.Current()
	if !ok {
		return false, ErrNoPlan
	}

	category, item, err := findShoppingItem(plan, category, item)
	if err != nil {
		return false, err
	}
	return a.Plans.ToggleChecked(category, item), nil
}

// ToggleShoppingItemAt is ToggleShoppingItem for a caller that showed the list of plan version.
// It fails with ErrStalePlan once a newer plan has replaced that one.
func (a *App) ToggleShoppingItemAt(version uint64, category, item string) (bool, error) {
	plan, current, ok := a.Plans.Snapshot()
	if !ok {
		return false, ErrNoPlan
	}
	if current != version {
		return false, ErrStalePlan
	}

	category, item, err := findShoppingItem(plan, category, item)
	if err != nil {
		return false, err
	}
	on, ok := a.Plans.ToggleCheckedAt(version, category, item)
	if !ok {
		return false, ErrStalePlan
	}
	return on, nil
}

func findShoppingItem(plan *types.MealPlan, category, item string) (string, string, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	item = strings.TrimSpace(item)
	if category == "" || item == "" {
		return "", "", &types.ValidationError{Message: "category and item are required"}
	}

	for _, c := range plan.ShoppingList.Categories() {
		if c.Name != category {
			continue
		}
		for _, candidate := range c.Items {
			if candidate == item {
				return category, item, nil
			}
		}
		return "", "", &types.ValidationError{Message: fmt.Sprintf("%q is not on the %s list", item, category), Fields: []string{"item"}}
	}
	return "", "", &types.ValidationError{Message: fmt.Sprintf("unknown shopping category %q", category), Fields: []string{"category"}}
}

// ToggleBulkItem flips the stocked flag of a bulk staple
func (a *App) ToggleBulkItem(item string) (bool, error) {
	if strings.TrimSpace(item) == "" {
		return false, &types.ValidationError{Message: "item is required", Fields: []string{"item"}}
	}
	return a.Pantry.Toggle(item), nil
}

// PantryItems lists the tracked bulk staples
func (a *App) PantryItems() []pantry.Item {
	return a.Pantry.Items()
}

// RateRecipe archives recipe with r
func (a *App) RateRecipe(recipe types.Recipe, r types.Ratings) (*types.RatedRecipe, error) {
	return a.Ratings.Submit(recipe, r)
}

// RatePlannedMeal rates a recipe of the current plan. slot is "lunch" or a weekday name.
// Leftover nights have no recipe of their own and cannot be rated.
func (a *App) RatePlannedMeal(slot string, r types.Ratings) (*types.RatedRecipe, error) {
	plan, ok := a.Plans.Current()
	if !ok {
		return nil, ErrNoPlan
	}

	recipe, err := recipeForSlot(plan, slot)
	if err != nil {
		return nil, err
	}
	return a.Ratings.Submit(recipe, r)
}

// Leaderboard returns the top rated recipes
func (a *App) Leaderboard(limit int) []types.RatedRecipe {
	return a.Ratings.Leaderboard(limit)
}

// Archive returns every rated recipe in completion order
func (a *App) Archive() []types.RatedRecipe {
	return a.Ratings.All()
}

// Options returns the quiz choices
func (a *App) Options() preferences.Options {
	return preferences.DefaultOptions()
}

// ShoppingLinks returns the supported grocery stores
func (a *App) ShoppingLinks() []shopping.Link {
	return shopping.Links()
}

// UserMessage converts an error from any command into the text shown to a user
func UserMessage(err error) string {
	var validationErr *types.ValidationError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationMessage(validationErr)
	case errors.Is(err, generation.ErrBusy):
		return "A meal plan is already being generated. Please wait for it to finish."
	case errors.Is(err, generation.ErrCancelled):
		return "Meal plan generation was cancelled."
	case errors.Is(err, ErrNoPlan):
		return "No meal plan yet. Generate one first."
	case errors.Is(err, ErrStalePlan):
		return "That shopping list belongs to an older plan. Open the current one and try again."
	default:
		return GenerationFailedMessage
	}
}

func validationMessage(err *types.ValidationError) string {
	switch err.Message {
	case preferences.IncompleteMessage:
		return "Please answer all four questions: protein, carb, veggie and style."
	case ratings.IncompleteMessage:
		return "Please rate cost, taste and difficulty from 1 to 5."
	case "":
		return "Invalid input."
	default:
		return strings.ToUpper(err.Message[:1]) + err.Message[1:] + "."
	}
}

func recipeForSlot(plan *types.MealPlan, slot string) (types.Recipe, error) {
	slot = strings.TrimSpace(slot)
	if strings.EqualFold(slot, string(types.CourseLunch)) {
		return plan.Lunch.Snapshot(), nil
	}

	for _, day := range types.Weekdays {
		if !strings.EqualFold(slot, string(day)) {
			continue
		}
		dinner, ok := plan.Dinner(day)
		if !ok {
			return types.Recipe{}, &types.ValidationError{Message: fmt.Sprintf("no dinner planned for %s", day), Fields: []string{"slot"}}
		}
		if dinner.IsLeftover {
			return types.Recipe{}, &types.ValidationError{Message: fmt.Sprintf("%s is a leftover night; rate the night it was cooked", day), Fields: []string{"slot"}}
		}
		return dinner.Snapshot(), nil
	}

	return types.Recipe{}, &types.ValidationError{Message: fmt.Sprintf("unknown meal %q; use lunch or a weekday", slot), Fields: []string{"slot"}}
}
