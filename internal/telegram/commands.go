package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/meal-planner/internal/app"
	"github.com/jonathan/meal-planner/internal/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Reply is one outgoing message
type Reply struct {
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

// Handler turns bot commands into app calls. It has no Telegram connection and is safe
// for concurrent use.
type Handler struct {
	app *app.App
}

// NewHandler creates a Handler for a
func NewHandler(a *app.App) *Handler {
	return &Handler{app: a}
}

// Handle runs one command and returns the messages to send back, in order.
// command is the command name without its slash.
func (h *Handler) Handle(ctx context.Context, command, args string) []Reply {
	args = strings.TrimSpace(args)

	switch strings.ToLower(command) {
	case "start", "help":
		return text(helpText)
	case "options":
		return text(formatOptions(h.app.Options()))
	case "plan":
		return h.generate(ctx, args)
	case "show":
		return h.show()
	case "list":
		return h.shoppingList()
	case "check":
		return h.check(args)
	case "pantry":
		return h.pantry(args)
	case "rate":
		return h.rate(args)
	case "leaderboard", "top":
		return text(formatLeaderboard(h.app.Leaderboard(0)))
	case "shop", "links":
		return text(formatLinks(h.app.ShoppingLinks()))
	case "cancel":
		if h.app.CancelGeneration() {
			return text("🛑 Cancelling the meal plan generation.")
		}
		return text("Nothing is being generated right now.")
	default:
		return text("🤔 Unknown command. Send /help for the list.")
	}
}

func (h *Handler) generate(ctx context.Context, args string) []Reply {
	prefs, err := parsePreferences(args)
	if err != nil {
		return failure(err)
	}

	plan, err := h.app.GeneratePlan(ctx, prefs)
	if err != nil {
		return failure(err)
	}

	replies := []Reply{{Text: formatPlan(plan)}}
	if list, ok := h.listReply(); ok {
		replies = append(replies, list)
	}
	return replies
}

func (h *Handler) show() []Reply {
	plan, ok := h.app.Plans.Current()
	if !ok {
		return failure(app.ErrNoPlan)
	}

	replies := []Reply{{Text: formatPlan(plan)}}
	if list, ok := h.listReply(); ok {
		replies = append(replies, list)
	}
	return replies
}

func (h *Handler) shoppingList() []Reply {
	list, ok := h.listReply()
	if !ok {
		return failure(app.ErrNoPlan)
	}
	return []Reply{list}
}

// listReply renders the current shopping list with a keyboard bound to that plan's version
func (h *Handler) listReply() (Reply, bool) {
	plan, version, ok := h.app.Plans.Snapshot()
	if !ok {
		return Reply{}, false
	}

	checked := h.app.Plans.Checked()
	return Reply{
		Text:     formatShoppingList(plan.ShoppingList, checked),
		Keyboard: shoppingKeyboard(plan.ShoppingList, checked, version),
	}, true
}

func (h *Handler) pantryReply() Reply {
	items, version := h.app.Pantry.Snapshot()
	return Reply{Text: formatPantry(items), Keyboard: pantryKeyboard(items, version)}
}

func (h *Handler) check(args string) []Reply {
	category, item, err := parseCheck(args)
	if err != nil {
		return failure(err)
	}

	on, err := h.app.ToggleShoppingItem(category, item)
	if err != nil {
		return failure(err)
	}
	if on {
		return text(fmt.Sprintf("✅ Checked off %s", item))
	}
	return text(fmt.Sprintf("⬜ Unchecked %s", item))
}

func (h *Handler) pantry(args string) []Reply {
	if args != "" {
		stocked, err := h.app.ToggleBulkItem(args)
		if err != nil {
			return failure(err)
		}
		if stocked {
			return text(fmt.Sprintf("✅ %s is stocked", strings.ToLower(args)))
		}
		return text(fmt.Sprintf("⬜ %s needs buying", strings.ToLower(args)))
	}

	return []Reply{h.pantryReply()}
}

func (h *Handler) rate(args string) []Reply {
	slot, ratings, err := parseRating(args)
	if err != nil {
		return failure(err)
	}

	entry, err := h.app.RatePlannedMeal(slot, ratings)
	if err != nil {
		return failure(err)
	}
	return text(formatRated(entry))
}

const (
	staleList   = "That list is out of date. Send /list for a fresh one."
	stalePantry = "That list is out of date. Send /pantry for a fresh one."
)

// HandleCallback applies an inline button press. It returns a short notice for the
// button spinner and the refreshed message, or ok=false when the data is stale or unknown.
func (h *Handler) HandleCallback(data string) (notice string, refreshed Reply, ok bool) {
	parts := strings.Split(data, ":")

	switch {
	case len(parts) == 4 && parts[0] == checkPrefix:
		return h.toggleFromButton(parts[1], parts[2], parts[3])
	case len(parts) == 3 && parts[0] == pantryPrefix:
		return h.stockFromButton(parts[1], parts[2])
	}

	return "", Reply{}, false
}

func (h *Handler) toggleFromButton(versionArg, categoryArg, itemArg string) (string, Reply, bool) {
	version, err := strconv.ParseUint(versionArg, 10, 64)
	if err != nil {
		return "", Reply{}, false
	}

	plan, current, exists := h.app.Plans.Snapshot()
	if !exists {
		return app.UserMessage(app.ErrNoPlan), Reply{}, false
	}
	if current != version {
		return staleList, Reply{}, false
	}
	category, item, found := itemAt(plan.ShoppingList, categoryArg, itemArg)
	if !found {
		return staleList, Reply{}, false
	}

	on, err := h.app.ToggleShoppingItemAt(version, category, item)
	if errors.Is(err, app.ErrStalePlan) {
		return staleList, Reply{}, false
	}
	if err != nil {
		return app.UserMessage(err), Reply{}, false
	}

	refreshed, ok := h.listReply()
	if !ok {
		return app.UserMessage(app.ErrNoPlan), Reply{}, false
	}
	if on {
		return "Checked off " + item, refreshed, true
	}
	return "Unchecked " + item, refreshed, true
}

func (h *Handler) stockFromButton(versionArg, indexArg string) (string, Reply, bool) {
	version, err := strconv.ParseUint(versionArg, 10, 64)
	if err != nil {
		return "", Reply{}, false
	}
	i, err := strconv.Atoi(indexArg)
	if err != nil {
		return "", Reply{}, false
	}

	items, current := h.app.Pantry.Snapshot()
	if current != version || i < 0 || i >= len(items) {
		return stalePantry, Reply{}, false
	}

	// The name came from the same version the button was drawn from, so toggling by name is safe
	stocked, err := h.app.ToggleBulkItem(items[i].Name)
	if err != nil {
		return app.UserMessage(err), Reply{}, false
	}
	if stocked {
		return items[i].Name + " is stocked", h.pantryReply(), true
	}
	return items[i].Name + " needs buying", h.pantryReply(), true
}

func itemAt(list types.ShoppingList, category, item string) (string, string, bool) {
	ci, err := strconv.Atoi(category)
	if err != nil {
		return "", "", false
	}
	ii, err := strconv.Atoi(item)
	if err != nil {
		return "", "", false
	}

	categories := list.Categories()
	if ci < 0 || ci >= len(categories) {
		return "", "", false
	}
	items := categories[ci].Items
	if ii < 0 || ii >= len(items) {
		return "", "", false
	}
	return categories[ci].Name, items[ii], true
}

// parsePreferences reads "protein | carb | veggie | style".
// Missing answers are left blank for the preference validator to report.
func parsePreferences(args string) (types.Preferences, error) {
	parts := splitArgs(args)
	if len(parts) > 4 {
		return types.Preferences{}, &types.ValidationError{Message: "expected four answers separated by |: protein | carb | veggie | style"}
	}

	answers := make([]string, 4)
	copy(answers, parts)
	return types.Preferences{Protein: answers[0], Carb: answers[1], Veggie: answers[2], Style: answers[3]}, nil
}

// parseCheck reads "category | item"
func parseCheck(args string) (string, string, error) {
	parts := splitArgs(args)
	if len(parts) != 2 {
		return "", "", &types.ValidationError{Message: "use /check category | item, e.g. /check dairy | greek yogurt"}
	}
	return parts[0], parts[1], nil
}

// parseRating reads "slot cost taste difficulty"
func parseRating(args string) (string, types.Ratings, error) {
	usage := &types.ValidationError{Message: "use /rate lunch|monday..friday cost taste difficulty, e.g. /rate monday 4 5 3"}

	fields := strings.Fields(args)
	if len(fields) != 4 {
		return "", types.Ratings{}, usage
	}

	scores := make([]int, 3)
	for i, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", types.Ratings{}, usage
		}
		scores[i] = n
	}
	return fields[0], types.Ratings{Cost: scores[0], Taste: scores[1], Difficulty: scores[2]}, nil
}

// splitArgs splits on "|" and trims each part. An empty string has no parts.
func splitArgs(args string) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}
	parts := strings.Split(args, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func text(s string) []Reply {
	return []Reply{{Text: s}}
}

func failure(err error) []Reply {
	return text("❌ " + app.UserMessage(err))
}
