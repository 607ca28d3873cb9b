package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("mealplan.json", "weekly-plan")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Generate a personalized weekly meal plan")
	for _, placeholder := range []string{"{{.Protein}}", "{{.Carb}}", "{{.Veggie}}", "{{.Style}}", "{{.DinnerCorpus}}", "{{.Breakfast}}", "{{.OutputShape}}"} {
		assert.Contains(t, prompt, placeholder)
	}
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("mealplan.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ValidPrompt(t *testing.T) {
	ClearCache()

	assert.NotPanics(t, func() {
		prompt := MustGet("mealplan.json", "breakfast-reference")
		assert.Contains(t, prompt, "Greek yogurt")
	})
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	result := Format(template, data)
	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", result)
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	data := map[string]string{"Key": "Value"}

	result := Format(template, data)
	assert.Equal(t, template, result)
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	data := map[string]string{}

	result := Format(template, data)
	assert.Equal(t, template, result) // Placeholder remains
}

func TestFormat_ValuesAreNotResubstituted(t *testing.T) {
	template := "{{.A}} and {{.B}}"
	data := map[string]string{
		"A": "{{.B}}",
		"B": "bee",
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, "{{.B}} and bee", Format(template, data))
	}
}

func TestCaching(t *testing.T) {
	ClearCache()

	// First call loads from file
	prompt1, err := Get("mealplan.json", "weekly-plan")
	require.NoError(t, err)

	// Second call should use cache
	prompt2, err := Get("mealplan.json", "weekly-plan")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
