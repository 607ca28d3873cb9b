package planning

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePreferences() types.Preferences {
	return types.Preferences{
		Protein: "Salmon",
		Carb:    "Sweet Potato",
		Veggie:  "Green Beans",
		Style:   "Bowl/Salad",
	}
}

func TestBuild_ContainsPreferences(t *testing.T) {
	req, err := Build(samplePreferences(), nil)
	require.NoError(t, err)

	text := req.Prompt()
	assert.Contains(t, text, "Protein: Salmon")
	assert.Contains(t, text, "Carb: Sweet Potato")
	assert.Contains(t, text, "Veggie: Green Beans")
	assert.Contains(t, text, "Style: Bowl/Salad")
}

func TestBuild_UsesConfig(t *testing.T) {
	req, err := Build(samplePreferences(), nil)
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultAnthropicModel, req.Model)
	assert.Equal(t, llm.DefaultMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)

	cfg := llm.DefaultGeminiConfig().WithMaxTokens(2048)
	req, err = Build(samplePreferences(), cfg)
	require.NoError(t, err)
	assert.Equal(t, llm.DefaultGeminiModel, req.Model)
	assert.Equal(t, 2048, req.MaxTokens)
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := Build(samplePreferences(), nil)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Build(samplePreferences(), nil)
		require.NoError(t, err)
		assert.Equal(t, first.Prompt(), again.Prompt())
	}
}

func TestBuild_IncludesCorpusBreakfastAndShape(t *testing.T) {
	req, err := Build(samplePreferences(), nil)
	require.NoError(t, err)
	text := req.Prompt()

	assert.Contains(t, text, strings.Join(DinnerCorpus, ", "))
	assert.Contains(t, text, "Weekly purchases: 2 tubs Greek yogurt")
	assert.Contains(t, text, "Already stocked in bulk: hemp seeds, blueberries")
	assert.Contains(t, text, OutputShape())
	assert.NotContains(t, text, "{{.")
}

func TestBuild_RejectsIncompletePreferences(t *testing.T) {
	p := samplePreferences()
	p.Veggie = "  "

	_, err := Build(p, nil)
	var validationErr *types.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"veggie"}, validationErr.Fields)
}

func TestDinnerCorpus(t *testing.T) {
	assert.Len(t, DinnerCorpus, 20)
	assert.Equal(t, "Marry Me Chicken", DinnerCorpus[0])
	assert.Equal(t, "Mediterranean Chickpea Salad", DinnerCorpus[19])
}

func TestOutputShape_DescribesAPlan(t *testing.T) {
	var plan types.MealPlan
	require.NoError(t, json.Unmarshal([]byte(OutputShape()), &plan))

	require.Len(t, plan.Dinners, 5)
	for i, day := range types.Weekdays {
		assert.Equal(t, day, plan.Dinners[i].Day)
	}
	assert.Equal(t, types.LunchServes, plan.Lunch.Serves)
	assert.True(t, plan.Dinners[1].IsLeftover)
	assert.Equal(t, types.SourceQuickEasy, plan.Dinners[4].Source)
}
