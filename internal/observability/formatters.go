// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/pantry"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/shopping"
	"github.com/jonathan/meal-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of ingredients to display per recipe
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintMealPlan outputs the lunch prep and the dinner schedule.
func (p *Printer) PrintMealPlan(plan *types.MealPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	lunch := plan.Lunch
	sb.WriteString(fmt.Sprintf("%s (%s)\n", lunch.Name, lunch.Serves))
	if lunch.PrepTime != "" {
		sb.WriteString(fmt.Sprintf("Prep:     %s\n", lunch.PrepTime))
	}
	if lunch.NutritionHighlight != "" {
		sb.WriteString(fmt.Sprintf("Why:      %s\n", lunch.NutritionHighlight))
	}
	if lunch.RecipeURL != "" {
		sb.WriteString(fmt.Sprintf("Recipe:   %s\n", lunch.RecipeURL))
	}
	writeIngredients(&sb, lunch.Ingredients)
	p.printBox("SUNDAY LUNCH PREP (Mon-Fri)", strings.TrimSuffix(sb.String(), "\n"))

	sb.Reset()
	for i, d := range plan.Dinners {
		if d.IsLeftover {
			sb.WriteString(fmt.Sprintf("%-9s  leftovers: %s\n", d.Day, d.Name))
		} else {
			sb.WriteString(fmt.Sprintf("%-9s  %s\n", d.Day, d.Name))
			sb.WriteString(fmt.Sprintf("           %s · meal %d", d.Source, d.MealNumber))
			if d.CookTime != "" {
				sb.WriteString(fmt.Sprintf(" · %s", d.CookTime))
			}
			sb.WriteString("\n")
			if d.RecipeURL != "" {
				sb.WriteString(fmt.Sprintf("           %s\n", d.RecipeURL))
			}
		}
		if i < len(plan.Dinners)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("DINNERS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeIngredients(sb *strings.Builder, ingredients []string) {
	if len(ingredients) == 0 {
		return
	}
	sb.WriteString("Ingredients:\n")
	count := min(len(ingredients), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", ingredients[i]))
	}
	if len(ingredients) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ingredients)-maxItemsToShow))
	}
}

// PrintShoppingList outputs every non-empty category with a checkbox per item.
func (p *Printer) PrintShoppingList(list types.ShoppingList, checked mealplan.CheckedItemSet) {
	var sb strings.Builder
	for _, c := range list.Categories() {
		if len(c.Items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(c.Name[:1])+c.Name[1:]))
		for _, item := range c.Items {
			box := "[ ]"
			if checked.Has(mealplan.ItemKey{Category: c.Name, Item: item}) {
				box = "[x]"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", box, item))
		}
		sb.WriteString("\n")
	}

	content := strings.TrimSuffix(sb.String(), "\n\n")
	if content == "" {
		content = "(empty)"
	}
	p.printBox("SHOPPING LIST", content)
}

// PrintPantry outputs the bulk staples and whether each is stocked.
func (p *Printer) PrintPantry(items []pantry.Item) {
	var sb strings.Builder
	for _, item := range items {
		status := "need to buy"
		if item.Stocked {
			status = "stocked"
		}
		sb.WriteString(fmt.Sprintf("%-20s %s\n", item.Name, status))
	}
	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "(no staples tracked)"
	}
	p.printBox("BULK STAPLES", content)
}

// PrintOptions outputs the quiz choices for each preference.
func (p *Printer) PrintOptions(opts preferences.Options) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Protein: %s\n", strings.Join(opts.Protein, ", ")))
	sb.WriteString(fmt.Sprintf("Carb:    %s\n", strings.Join(opts.Carb, ", ")))
	sb.WriteString(fmt.Sprintf("Veggie:  %s\n", strings.Join(opts.Veggie, ", ")))
	sb.WriteString(fmt.Sprintf("Style:   %s", strings.Join(opts.Style, ", ")))
	p.printBox("LUNCH OPTIONS", sb.String())
}

// PrintShoppingLinks outputs where the list can be shopped.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintShoppingLinks(links []shopping.Link) {
	for _, l := range links {
		fmt.Fprintf(p.out, "🛒 %s: %s\n", l.Store, l.URL)
	}
}
