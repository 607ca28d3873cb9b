// Package main provides the entry point for the meal planner CLI, HTTP API and Telegram bot.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meal_planner",
	Short: "Weekly meal plan generator",
	Long: `Meal Planner turns four lunch preferences (protein, carb, veggie, style) into a
weekly plan: one Sunday prep lunch for Monday to Friday, five dinners with two
leftover nights, and a categorized shopping list.

Run it once from the command line, as a REST API server, or as a private Telegram bot.`,
	SilenceUsage: true,
}

// Flags shared by every command that talks to the generation service
var (
	configPath  string
	apiKeyFlag  string
	providerArg string
	modelArg    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by env vars and flags)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "API key (optional, defaults to ANTHROPIC_API_KEY or GEMINI_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&providerArg, "provider", "", "Generation provider: anthropic or gemini")
	rootCmd.PersistentFlags().StringVar(&modelArg, "model", "", "Model id (optional, defaults to the provider's default)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
