// Package schemas holds the JSON Schema documents for generated artifacts.
// They are embedded so validation does not depend on the working directory.
package schemas

import _ "embed"

// MealPlanFile is the file name of the meal plan schema
const MealPlanFile = "meal_plan.schema.json"

// MealPlan is the JSON Schema a generated meal plan must satisfy
//
//go:embed meal_plan.schema.json
var MealPlan string
