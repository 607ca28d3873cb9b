package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/meal-planner/internal/config"
	"github.com/jonathan/meal-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessagesAPI answers every request with reply as the text content
func fakeMessagesAPI(t *testing.T, status int, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":    "message",
			"content": []map[string]string{{"type": "text", "text": reply}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// writeConfig writes a config file pointing the client at baseURL
func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	data, err := json.Marshal(config.Config{Provider: "anthropic", APIBaseURL: baseURL, RequestTimeout: "5s"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvProvider, config.EnvModel, config.EnvAnthropicKey, config.EnvGeminiKey, config.EnvPort} {
		t.Setenv(key, "")
	}
}

func planFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", "valid", "meal_plan.json"))
	require.NoError(t, err)
	return string(data)
}

var prefArgs = []string{"--protein", "Chicken", "--carb", "Rice", "--veggie", "Bell Peppers", "--style", "Mexican"}

func TestGenerate_PrintsPlan(t *testing.T) {
	isolateEnv(t)
	api := fakeMessagesAPI(t, http.StatusOK, planFixture(t))
	out := filepath.Join(t.TempDir(), "plan.json")

	args := append([]string{"generate", "--config", writeConfig(t, api.URL), "--api-key", "test-key", "--out", out}, prefArgs...)
	stdout, stderr, err := runCLI(t, args...)

	require.NoError(t, err)
	assert.Contains(t, stdout, "Chipotle Chicken Burrito Bowls")
	assert.Contains(t, stdout, "Marry Me Chicken")
	assert.Contains(t, stdout, "heavy cream")
	assert.Contains(t, stdout, "Safeway")
	assert.Contains(t, stderr, "Plan written to")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var plan types.MealPlan
	require.NoError(t, json.Unmarshal(data, &plan))
	assert.Len(t, plan.Dinners, 5)
}

func TestGenerate_JSONOutput(t *testing.T) {
	isolateEnv(t)
	api := fakeMessagesAPI(t, http.StatusOK, "```json\n"+planFixture(t)+"\n```")

	args := append([]string{"generate", "--json", "--config", writeConfig(t, api.URL), "--api-key", "test-key"}, prefArgs...)
	stdout, _, err := runCLI(t, args...)

	require.NoError(t, err)
	var plan types.MealPlan
	require.NoError(t, json.Unmarshal([]byte(stdout), &plan))
	assert.Equal(t, "Chipotle Chicken Burrito Bowls", plan.Lunch.Name)
}

func TestGenerate_IncompletePreferences(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, "generate", "--protein", "Chicken", "--carb", "Rice")

	require.Error(t, err)
	assert.Equal(t, "Please answer all four questions: protein, carb, veggie and style.", err.Error())
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, append([]string{"generate", "--provider", "anthropic"}, prefArgs...)...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name  string
		api   *httptest.Server
		class string
	}{
		{name: "service error", api: fakeMessagesAPI(t, http.StatusInternalServerError, "overloaded"), class: "service"},
		{name: "unparseable plan", api: fakeMessagesAPI(t, http.StatusOK, "sorry, no plan today"), class: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--config", writeConfig(t, tt.api.URL), "--api-key", "test-key"}, prefArgs...)
			_, _, err := runCLI(t, args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "("+tt.class+":")
		})
	}
}

func TestGenerate_UnsupportedProvider(t *testing.T) {
	isolateEnv(t)

	_, _, err := runCLI(t, append([]string{"generate", "--provider", "openai", "--api-key", "k"}, prefArgs...)...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}
