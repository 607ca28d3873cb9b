package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/meal-planner/internal/app"
	"github.com/jonathan/meal-planner/internal/generation"
	"github.com/jonathan/meal-planner/internal/observability"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a weekly meal plan from four lunch preferences",
	Long: `Generate a weekly meal plan. All four preferences are required; the quiz choices
are listed by the options command but any non-empty value is accepted.

Press Ctrl-C to cancel a running generation.`,
	Example: `  meal_planner generate --protein Chicken --carb Rice --veggie Broccoli --style Asian
  meal_planner generate -p Tofu -c Quinoa -g Kale -s Bowl/Salad --out plan.json`,
	RunE: runGenerate,
}

var (
	generateProtein string
	generateCarb    string
	generateVeggie  string
	generateStyle   string
	generateOut     string
	generateJSON    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateProtein, "protein", "p", "", "Lunch protein, e.g. Chicken")
	generateCmd.Flags().StringVarP(&generateCarb, "carb", "c", "", "Lunch carb, e.g. Rice")
	generateCmd.Flags().StringVarP(&generateVeggie, "veggie", "g", "", "Lunch veggie, e.g. Broccoli")
	generateCmd.Flags().StringVarP(&generateStyle, "style", "s", "", "Lunch style, e.g. Mexican")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Also write the plan JSON to this file")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the plan as JSON instead of formatted text")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	prefs := types.Preferences{
		Protein: generateProtein,
		Carb:    generateCarb,
		Veggie:  generateVeggie,
		Style:   generateStyle,
	}
	// Checked before the config so a bad invocation never needs an API key
	if err := preferences.Validate(prefs); err != nil {
		return errors.New(app.UserMessage(err))
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, client, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	plan, err := a.GeneratePlan(ctx, prefs)
	if err != nil {
		return fmt.Errorf("%s (%s: %w)", app.UserMessage(err), generation.Classify(err), err)
	}

	if generateOut != "" {
		jsonBytes, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if err := os.WriteFile(generateOut, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Plan written to %s\n", generateOut)
	}

	out := cmd.OutOrStdout()
	if generateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}

	printer := observability.NewPrinter(out)
	printer.PrintMealPlan(plan)
	printer.PrintShoppingList(plan.ShoppingList, nil)
	printer.PrintPantry(a.PantryItems())
	printer.PrintShoppingLinks(a.ShoppingLinks())
	return nil
}
