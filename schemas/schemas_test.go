package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	internalschemas "github.com/jonathan/meal-planner/internal/schemas"
	"github.com/jonathan/meal-planner/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		schemas.MealPlanFile,
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema, "schema should declare $schema and type")
		})
	}
}

func TestEmbeddedMatchesFile(t *testing.T) {
	data, err := os.ReadFile(schemas.MealPlanFile)
	require.NoError(t, err)
	assert.Equal(t, string(data), schemas.MealPlan)
}

func TestMealPlanSchema_ValidatesExampleFile(t *testing.T) {
	err := internalschemas.ValidateJSON(schemas.MealPlanFile, filepath.Join("..", "testdata", "valid", "meal_plan.json"))
	assert.NoError(t, err)
}

func TestMealPlanSchema_RejectsMissingShoppingList(t *testing.T) {
	err := internalschemas.ValidateJSON(schemas.MealPlanFile, filepath.Join("..", "testdata", "invalid", "missing_shopping_list.json"))
	require.Error(t, err)

	var validationErr *internalschemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}
