package telegram

import (
	"fmt"
	"strings"

	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/pantry"
	"github.com/jonathan/meal-planner/internal/preferences"
	"github.com/jonathan/meal-planner/internal/shopping"
	"github.com/jonathan/meal-planner/internal/types"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback data prefixes. Buttons carry indexes, not names, to stay under Telegram's 64 byte limit,
// plus the version of the list they were drawn from so an old keyboard cannot hit a moved item.
//
//	chk:<plan version>:<category index>:<item index>
//	pan:<pantry version>:<item index>
const (
	checkPrefix  = "chk"
	pantryPrefix = "pan"
)

const helpText = `🥗 Meal Planner

/plan protein | carb | veggie | style
    generate this week's plan, e.g. /plan Chicken | Rice | Broccoli | Asian
/options  quiz choices
/show     current plan and shopping list
/list     shopping list only
/check category | item   tick an item off
/pantry [item]   show or toggle bulk staples
/rate lunch|monday..friday cost taste difficulty   e.g. /rate monday 4 5 3
/leaderboard     top rated recipes
/shop     grocery store links
/cancel   stop a running generation`

func formatOptions(opts preferences.Options) string {
	var sb strings.Builder
	sb.WriteString("📝 Lunch options\n\n")
	sb.WriteString(fmt.Sprintf("Protein: %s\n", strings.Join(opts.Protein, ", ")))
	sb.WriteString(fmt.Sprintf("Carb: %s\n", strings.Join(opts.Carb, ", ")))
	sb.WriteString(fmt.Sprintf("Veggie: %s\n", strings.Join(opts.Veggie, ", ")))
	sb.WriteString(fmt.Sprintf("Style: %s", strings.Join(opts.Style, ", ")))
	return sb.String()
}

func formatPlan(plan *types.MealPlan) string {
	var sb strings.Builder
	sb.WriteString("📅 Weekly Meal Plan\n\n")

	lunch := plan.Lunch
	sb.WriteString(fmt.Sprintf("🥡 Sunday prep: %s (%s)\n", lunch.Name, lunch.Serves))
	if lunch.PrepTime != "" {
		sb.WriteString(fmt.Sprintf("⏱ %s\n", lunch.PrepTime))
	}
	if lunch.NutritionHighlight != "" {
		sb.WriteString(fmt.Sprintf("💪 %s\n", lunch.NutritionHighlight))
	}
	if lunch.RecipeURL != "" {
		sb.WriteString(fmt.Sprintf("🔗 %s\n", lunch.RecipeURL))
	}

	sb.WriteString("\n🍽 Dinners\n")
	for _, d := range plan.Dinners {
		if d.IsLeftover {
			sb.WriteString(fmt.Sprintf("%s: ♻️ leftovers (%s)\n", d.Day, d.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s", d.Day, d.Name))
		if d.CookTime != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", d.CookTime))
		}
		sb.WriteString(fmt.Sprintf("\n    %s · meal %d\n", d.Source, d.MealNumber))
		if d.RecipeURL != "" {
			sb.WriteString(fmt.Sprintf("    🔗 %s\n", d.RecipeURL))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func formatShoppingList(list types.ShoppingList, checked mealplan.CheckedItemSet) string {
	var sb strings.Builder
	sb.WriteString("🛒 Shopping List\n")

	empty := true
	for _, c := range list.Categories() {
		if len(c.Items) == 0 {
			continue
		}
		empty = false
		sb.WriteString(fmt.Sprintf("\n%s\n", strings.ToUpper(c.Name[:1])+c.Name[1:]))
		for _, item := range c.Items {
			sb.WriteString(fmt.Sprintf("%s %s\n", checkMark(checked.Has(mealplan.ItemKey{Category: c.Name, Item: item})), item))
		}
	}
	if empty {
		sb.WriteString("\n(empty)")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// shoppingKeyboard has one toggle button per item, or nil for an empty list
func shoppingKeyboard(list types.ShoppingList, checked mealplan.CheckedItemSet, version uint64) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for ci, c := range list.Categories() {
		for ii, item := range c.Items {
			label := fmt.Sprintf("%s %s", checkMark(checked.Has(mealplan.ItemKey{Category: c.Name, Item: item})), item)
			data := fmt.Sprintf("%s:%d:%d:%d", checkPrefix, version, ci, ii)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(label, data)))
		}
	}
	if len(rows) == 0 {
		return nil
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func formatPantry(items []pantry.Item) string {
	if len(items) == 0 {
		return "🫙 No bulk staples tracked."
	}

	var sb strings.Builder
	sb.WriteString("🫙 Bulk staples\n\n")
	for _, item := range items {
		status := "need to buy"
		if item.Stocked {
			status = "stocked"
		}
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", checkMark(item.Stocked), item.Name, status))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func pantryKeyboard(items []pantry.Item, version uint64) *tgbotapi.InlineKeyboardMarkup {
	if len(items) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(items))
	for i, item := range items {
		label := fmt.Sprintf("%s %s", checkMark(item.Stocked), item.Name)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s:%d:%d", pantryPrefix, version, i)),
		))
	}
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func formatLeaderboard(entries []types.RatedRecipe) string {
	if len(entries) == 0 {
		return "🏆 No rated recipes yet. Use /rate after cooking something."
	}

	var sb strings.Builder
	sb.WriteString("🏆 Leaderboard\n\n")
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s ⭐ %.1f\n", i+1, e.Recipe.Name, e.TotalScore))
		sb.WriteString(fmt.Sprintf("    cost %d · taste %d · difficulty %d\n", e.Ratings.Cost, e.Ratings.Taste, e.Ratings.Difficulty))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func formatRated(entry *types.RatedRecipe) string {
	return fmt.Sprintf("⭐ Rated %s: %.1f (cost %d · taste %d · difficulty %d)",
		entry.Recipe.Name, entry.TotalScore, entry.Ratings.Cost, entry.Ratings.Taste, entry.Ratings.Difficulty)
}

func formatLinks(links []shopping.Link) string {
	var sb strings.Builder
	for _, l := range links {
		sb.WriteString(fmt.Sprintf("🛒 %s: %s\n", l.Store, l.URL))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func checkMark(on bool) string {
	if on {
		return "✅"
	}
	return "⬜"
}
