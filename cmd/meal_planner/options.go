package main

import (
	"github.com/jonathan/meal-planner/internal/observability"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/spf13/cobra"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the quiz choices for each preference",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		observability.NewPrinter(cmd.OutOrStdout()).PrintOptions(preferences.DefaultOptions())
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}
