// Package telegram runs the meal planner as a private Telegram bot.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jonathan/meal-planner/internal/app"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// pollTimeout is the long polling timeout in seconds
const pollTimeout = 60

// sender is the part of the Bot API the bot talks through
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot answers commands from a single allowed Telegram user.
type Bot struct {
	api         *tgbotapi.BotAPI
	out         sender
	handler     *Handler
	app         *app.App
	allowUserID int64
	wg          sync.WaitGroup
}

// NewBot connects to the Bot API with token. Only allowUserID may use the bot.
func NewBot(token string, allowUserID int64, a *app.App) (*Bot, error) {
	if token == "" {
		return nil, errors.New("telegram bot token is required")
	}
	if allowUserID <= 0 {
		return nil, errors.New("telegram allowed user id is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("[telegram] authorized on account %s", api.Self.UserName)

	b := newBot(api, allowUserID, a)
	b.api = api
	return b, nil
}

func newBot(out sender, allowUserID int64, a *app.App) *Bot {
	return &Bot{
		out:         out,
		handler:     NewHandler(a),
		app:         a,
		allowUserID: allowUserID,
	}
}

// Run long-polls for updates until ctx is done. On return any running generation
// has been cancelled and every in-flight command has finished.
func (b *Bot) Run(ctx context.Context) error {
	if b.api == nil {
		return errors.New("bot is not connected")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	defer b.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			log.Println("[telegram] stopping")
			b.api.StopReceivingUpdates()
			b.app.CancelGeneration()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		if !b.allowed(update.CallbackQuery.From) {
			return
		}
		b.handleCallback(update.CallbackQuery)

	case update.Message != nil:
		if !b.allowed(update.Message.From) {
			return
		}
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) allowed(from *tgbotapi.User) bool {
	if from != nil && from.ID == b.allowUserID {
		return true
	}
	if from != nil {
		log.Printf("[telegram] ⚠️ unauthorized access attempt from user %d (@%s)", from.ID, from.UserName)
	}
	return false
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if !msg.IsCommand() {
		b.send(chatID, Reply{Text: "Send /help to see what I can do."})
		return
	}

	command, args := msg.Command(), msg.CommandArguments()
	if command != "plan" {
		for _, r := range b.handler.Handle(ctx, command, args) {
			b.send(chatID, r)
		}
		return
	}

	// Generation takes a while; keep polling so /cancel can get through
	status, err := b.out.Send(tgbotapi.NewMessage(chatID, "🧑‍🍳 Thinking... (generating your plan, send /cancel to stop)"))
	if err != nil {
		log.Printf("[telegram] failed to send status: %v", err)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		replies := b.handler.Handle(ctx, command, args)
		b.edit(chatID, status.MessageID, replies[0])
		for _, r := range replies[1:] {
			b.send(chatID, r)
		}
	}()
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	notice, refreshed, ok := b.handler.HandleCallback(query.Data)

	if _, err := b.out.Request(tgbotapi.NewCallback(query.ID, notice)); err != nil {
		log.Printf("[telegram] failed to answer callback: %v", err)
	}
	if !ok || query.Message == nil {
		return
	}
	b.edit(query.Message.Chat.ID, query.Message.MessageID, refreshed)
}

func (b *Bot) send(chatID int64, r Reply) {
	msg := tgbotapi.NewMessage(chatID, r.Text)
	if r.Keyboard != nil {
		msg.ReplyMarkup = *r.Keyboard
	}
	if _, err := b.out.Send(msg); err != nil {
		log.Printf("[telegram] failed to send message: %v", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, r Reply) {
	var edit tgbotapi.EditMessageTextConfig
	if r.Keyboard != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, r.Text, *r.Keyboard)
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, r.Text)
	}
	if _, err := b.out.Send(edit); err != nil {
		log.Printf("[telegram] failed to edit message: %v", err)
	}
}
