package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/meal-planner/internal/app"
	"github.com/jonathan/meal-planner/internal/config"
	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/spf13/cobra"
)

// loadConfig resolves the configuration (env > --config file > defaults)
// and applies the root flags on top. Only flags that were set override.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("provider") {
		cfg.Provider = strings.ToLower(strings.TrimSpace(providerArg))
	}
	if flags.Changed("model") {
		cfg.Model = modelArg
	}
	if flags.Changed("api-key") {
		cfg.APIKey = apiKeyFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp creates the generation client for cfg and the application around it.
// The caller closes the returned client.
func newApp(ctx context.Context, cfg *config.Config) (*app.App, llm.Client, error) {
	llmCfg := cfg.LLMConfig()

	client, err := llm.NewClient(ctx, llmCfg, cfg.ResolveAPIKey())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s client: %w", llmCfg.Provider, err)
	}

	a := app.New(client, app.Options{
		LLMConfig: llmCfg,
		BulkItems: cfg.BulkItems,
	})
	return a, client, nil
}
