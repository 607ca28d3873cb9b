package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mealPlanSchemaPath = "../../schemas/meal_plan.schema.json"

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", path))
	require.NoError(t, err)
	return data
}

func TestValidateJSON_MealPlanSchema(t *testing.T) {
	tests := []struct {
		name      string
		jsonFile  string
		wantError bool
	}{
		{
			name:      "valid meal plan",
			jsonFile:  "../../testdata/valid/meal_plan.json",
			wantError: false,
		},
		{
			name:      "missing shopping list",
			jsonFile:  "../../testdata/invalid/missing_shopping_list.json",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(mealPlanSchemaPath, tt.jsonFile)
			if tt.wantError {
				require.Error(t, err)
				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error should be ValidationError, got %T: %v", err, err)
				}
				assert.Greater(t, len(validationErr.Errors), 0, "validation error should have at least one field error")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", "../../testdata/valid/meal_plan.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(mealPlanSchemaPath, "testdata/nonexistent_json.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateMealPlan_Valid(t *testing.T) {
	assert.NoError(t, ValidateMealPlan(readFixture(t, "valid/meal_plan.json")))
}

func TestValidateMealPlan_MissingShoppingList(t *testing.T) {
	err := ValidateMealPlan(readFixture(t, "invalid/missing_shopping_list.json"))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details(), "(root): shoppingList is required")
}

func TestValidateMealPlan_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{
			name:  "four dinners",
			json:  `{"lunch": {"name": "x", "ingredients": [], "instructions": ""}, "dinners": [{}, {}, {}, {}], "shoppingList": {}}`,
			field: "dinners",
		},
		{
			name: "unknown source",
			json: `{"lunch": {"name": "x", "ingredients": [], "instructions": ""},
				"dinners": [{"day": "Monday", "name": "a", "isLeftover": false, "mealNumber": 1, "source": "Blog", "ingredients": [], "instructions": ""}],
				"shoppingList": {}}`,
			field: "dinners.0.source",
		},
		{
			name: "meal number out of range",
			json: `{"lunch": {"name": "x", "ingredients": [], "instructions": ""},
				"dinners": [{"day": "Monday", "name": "a", "isLeftover": true, "mealNumber": 4}],
				"shoppingList": {}}`,
			field: "dinners.0.mealNumber",
		},
		{
			name: "cook entry without ingredients",
			json: `{"lunch": {"name": "x", "ingredients": [], "instructions": ""},
				"dinners": [{"day": "Monday", "name": "a", "isLeftover": false, "mealNumber": 1, "source": "NYT Top 50", "instructions": ""}],
				"shoppingList": {}}`,
			field: "dinners.0",
		},
		{
			name:  "ingredients not strings",
			json:  `{"lunch": {"name": "x", "ingredients": [1, 2], "instructions": ""}, "dinners": [], "shoppingList": {}}`,
			field: "lunch.ingredients.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMealPlan([]byte(tt.json))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)

			fields := make([]string, 0, len(validationErr.Errors))
			for _, fe := range validationErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateMealPlan_LeftoverMayOmitDetails(t *testing.T) {
	doc := `{"lunch": {"name": "x", "ingredients": [], "instructions": ""},
		"dinners": [{"day": "Tuesday", "name": "[Same as Monday]", "isLeftover": true, "mealNumber": 1}],
		"shoppingList": {}}`

	err := ValidateMealPlan([]byte(doc))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	for _, fe := range validationErr.Errors {
		assert.NotEqual(t, "dinners.0", fe.Field, "leftover entry should not need recipe details: %s", fe.Message)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
	assert.Equal(t, []string{"name: is required", "age: must be a number"}, err.Details())
}
