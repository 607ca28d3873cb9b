package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const ownerID int64 = 4242

// fakeSender records outgoing Bot API calls
type fakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) Sent() []tgbotapi.Chattable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), f.sent...)
}

func commandUpdate(fromID int64, text string, commandLen int) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: fromID, UserName: "someone"},
		Chat:      &tgbotapi.Chat{ID: fromID},
		Text:      text,
	}
	if commandLen > 0 {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: commandLen}}
	}
	return tgbotapi.Update{Message: msg}
}

func textOf(t *testing.T, c tgbotapi.Chattable) string {
	t.Helper()
	switch m := c.(type) {
	case tgbotapi.MessageConfig:
		return m.Text
	case tgbotapi.EditMessageTextConfig:
		return m.Text
	default:
		t.Fatalf("unexpected chattable %T", c)
		return ""
	}
}

func TestNewBot_RequiresSettings(t *testing.T) {
	_, err := NewBot("", ownerID, newTestApp(t))
	assert.Error(t, err)

	_, err = NewBot("token", 0, newTestApp(t))
	assert.Error(t, err)
}

func TestBot_IgnoresOtherUsers(t *testing.T) {
	out := &fakeSender{}
	b := newBot(out, ownerID, newTestApp(t))

	b.handleUpdate(context.Background(), commandUpdate(999, "/help", 5))
	b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID: "cb", From: &tgbotapi.User{ID: 999}, Data: "pan:0:0",
	}})

	assert.Empty(t, out.Sent())
	assert.True(t, b.app.Pantry.Stocked("blueberries"), "callback from a stranger must not toggle")
}

func TestBot_AnswersCommands(t *testing.T) {
	out := &fakeSender{}
	b := newBot(out, ownerID, newTestApp(t))

	b.handleUpdate(context.Background(), commandUpdate(ownerID, "/pantry", 7))
	b.handleUpdate(context.Background(), commandUpdate(ownerID, "hello there", 0))

	sent := out.Sent()
	require.Len(t, sent, 2)

	pantryMsg, ok := sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, ownerID, pantryMsg.ChatID)
	assert.Contains(t, pantryMsg.Text, "Bulk staples")
	_, hasKeyboard := pantryMsg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	assert.True(t, hasKeyboard)

	assert.Equal(t, "Send /help to see what I can do.", textOf(t, sent[1]))
}

func TestBot_PlanRunsInBackground(t *testing.T) {
	out := &fakeSender{}
	b := newBot(out, ownerID, newTestApp(t))

	b.handleUpdate(context.Background(), commandUpdate(ownerID, "/plan Chicken | Rice | Bell Peppers | Mexican", 5))
	b.wg.Wait()

	sent := out.Sent()
	require.Len(t, sent, 3)
	assert.Contains(t, textOf(t, sent[0]), "Thinking")

	edit, ok := sent[1].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 1, edit.MessageID)
	assert.Contains(t, edit.Text, "Weekly Meal Plan")

	assert.Contains(t, textOf(t, sent[2]), "Shopping List")
}

func TestBot_CallbackEditsMessage(t *testing.T) {
	out := &fakeSender{}
	b := newBot(out, ownerID, newTestApp(t))

	b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-1",
		From:    &tgbotapi.User{ID: ownerID},
		Message: &tgbotapi.Message{MessageID: 77, Chat: &tgbotapi.Chat{ID: ownerID}},
		Data:    "pan:0:1",
	}})

	require.Len(t, out.requests, 1)
	answer, ok := out.requests[0].(tgbotapi.CallbackConfig)
	require.True(t, ok)
	assert.Equal(t, "cb-1", answer.CallbackQueryID)
	assert.Equal(t, "granola is stocked", answer.Text)

	sent := out.Sent()
	require.Len(t, sent, 1)
	edit, ok := sent[0].(tgbotapi.EditMessageTextConfig)
	require.True(t, ok)
	assert.Equal(t, 77, edit.MessageID)
	require.NotNil(t, edit.ReplyMarkup)
	assert.Contains(t, edit.Text, "✅ granola")
}

func TestBot_StaleCallbackOnlyAnswers(t *testing.T) {
	out := &fakeSender{}
	b := newBot(out, ownerID, newTestApp(t))

	b.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-2",
		From:    &tgbotapi.User{ID: ownerID},
		Message: &tgbotapi.Message{MessageID: 5, Chat: &tgbotapi.Chat{ID: ownerID}},
		Data:    "chk:1:0:0",
	}})

	assert.Len(t, out.requests, 1)
	assert.Empty(t, out.Sent())
}

func TestBot_RunRequiresConnection(t *testing.T) {
	b := newBot(&fakeSender{}, ownerID, newTestApp(t))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, b.Run(ctx))
}
