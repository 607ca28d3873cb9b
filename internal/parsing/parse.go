// Package parsing turns raw generation output into a validated meal plan.
package parsing

import (
	"encoding/json"
	"errors"

	"github.com/jonathan/meal-planner/internal/llm"
	"github.com/jonathan/meal-planner/internal/schemas"
	"github.com/jonathan/meal-planner/internal/types"
)

// Parse cleans raw service text and decodes it into a MealPlan.
// The document is checked against the meal plan schema and the dinner pairing rules
// before it becomes a domain value, so callers never see a partially valid plan.
func Parse(raw string) (*types.MealPlan, error) {
	text := llm.CleanJSONBlock(raw)
	if text == "" {
		return nil, &ParseError{Message: MessageMalformed, Details: []string{"empty payload"}}
	}

	data := []byte(text)
	if !json.Valid(data) {
		var probe any
		return nil, &ParseError{Message: MessageMalformed, Cause: json.Unmarshal(data, &probe)}
	}

	if err := schemas.ValidateMealPlan(data); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &ParseError{Message: MessageSchemaMismatch, Details: validationErr.Details()}
		}
		return nil, &ParseError{Message: MessageSchemaMismatch, Cause: err}
	}

	var plan types.MealPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, &ParseError{Message: MessageMalformed, Cause: err}
	}

	if details := checkDinners(plan.Dinners); len(details) > 0 {
		return nil, &ParseError{Message: MessageSchemaMismatch, Details: details}
	}

	normalizePlan(&plan)
	return &plan, nil
}
