package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/meal-planner/internal/parsing"
	"github.com/jonathan/meal-planner/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a saved meal plan JSON file",
	Long: `Validate a meal plan JSON file (for example one written by generate --out)
against the meal plan schema and the dinner pairing rules.

With --schema the file is checked against that JSON Schema file only.`,
	Example: `  meal_planner validate --json plan.json
  meal_planner validate --schema schemas/meal_plan.schema.json --json plan.json`,
	RunE: runValidate,
}

var (
	validateJSONPath   string
	validateSchemaPath string
)

func init() {
	validateCmd.Flags().StringVar(&validateJSONPath, "json", "", "Path to meal plan JSON file")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to a JSON Schema file to validate against instead of the built-in checks")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if validateSchemaPath != "" {
		return validateAgainstSchema(cmd)
	}

	content, err := os.ReadFile(validateJSONPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	plan, err := parsing.Parse(string(content))
	if err != nil {
		stderr := cmd.ErrOrStderr()
		var parseErr *parsing.ParseError
		if errors.As(err, &parseErr) {
			printFailure(stderr, parseErr.Message, parseErr.Details)
			if parseErr.Cause != nil {
				_, _ = fmt.Fprintf(stderr, "  - %v\n", parseErr.Cause)
			}
		}
		return fmt.Errorf("validation failed for %s", validateJSONPath)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s with %d dinners\n", plan.Lunch.Name, len(plan.Dinners))
	return nil
}

func validateAgainstSchema(cmd *cobra.Command) error {
	err := schemas.ValidateJSON(validateSchemaPath, validateJSONPath)

	var validationErr *schemas.ValidationError
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s matches %s\n", validateJSONPath, validateSchemaPath)
		return nil
	case errors.As(err, &validationErr):
		printFailure(cmd.ErrOrStderr(), "schema mismatch", validationErr.Details())
		return fmt.Errorf("validation failed for %s", validateJSONPath)
	default:
		return err
	}
}

func printFailure(w io.Writer, message string, details []string) {
	_, _ = fmt.Fprintf(w, "Validation failed: %s\n", message)
	for _, d := range details {
		_, _ = fmt.Fprintf(w, "  - %s\n", d)
	}
}
