package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/meal-planner/internal/config"
	"github.com/jonathan/meal-planner/internal/telegram"
	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the private Telegram bot",
	Long: fmt.Sprintf(`Run the planner as a Telegram bot using long polling.

Requires %s and %s (or telegram_token and telegram_allow_user_id
in the config file). Messages from any other user are ignored.`, config.EnvTelegramToken, config.EnvTelegramAllowID),
	RunE: runBot,
}

func init() {
	rootCmd.AddCommand(botCmd)
}

func runBot(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.TelegramToken == "" {
		return fmt.Errorf("telegram token is required (set %s)", config.EnvTelegramToken)
	}
	if cfg.TelegramAllowUserID == 0 {
		return fmt.Errorf("telegram user id is required (set %s)", config.EnvTelegramAllowID)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, client, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAllowUserID, a)
	if err != nil {
		return err
	}

	return bot.Run(ctx)
}
