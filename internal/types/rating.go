// Package types provides type definitions for structured data used throughout the meal planner.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Course distinguishes the lunch prep recipe from a dinner recipe
type Course string

// Course constants
const (
	CourseLunch  Course = "lunch"
	CourseDinner Course = "dinner"
)

// Recipe is a snapshot of a planned recipe taken when it is rated.
// It is copied out of the plan so later plan replacement does not affect the archive.
type Recipe struct {
	Name               string       `json:"name" validate:"required"`
	Course             Course       `json:"course"`
	Day                Weekday      `json:"day,omitempty"`
	RecipeURL          string       `json:"recipeUrl,omitempty"`
	Source             DinnerSource `json:"source,omitempty"`
	Serves             string       `json:"serves,omitempty"`
	Ingredients        []string     `json:"ingredients,omitempty"`
	Instructions       string       `json:"instructions,omitempty"`
	Time               string       `json:"time,omitempty"`
	NutritionHighlight string       `json:"nutritionHighlight,omitempty"`
}

// Snapshot copies the lunch recipe into a Recipe
func (l LunchRecipe) Snapshot() Recipe {
	return Recipe{
		Name:               l.Name,
		Course:             CourseLunch,
		RecipeURL:          l.RecipeURL,
		Serves:             l.Serves,
		Ingredients:        append([]string(nil), l.Ingredients...),
		Instructions:       l.Instructions,
		Time:               l.PrepTime,
		NutritionHighlight: l.NutritionHighlight,
	}
}

// Snapshot copies the dinner entry into a Recipe
func (d DinnerEntry) Snapshot() Recipe {
	return Recipe{
		Name:               d.Name,
		Course:             CourseDinner,
		Day:                d.Day,
		RecipeURL:          d.RecipeURL,
		Source:             d.Source,
		Serves:             d.Serves,
		Ingredients:        append([]string(nil), d.Ingredients...),
		Instructions:       d.Instructions,
		Time:               d.CookTime,
		NutritionHighlight: d.NutritionHighlight,
	}
}

// Ratings are the three 1-5 scores a user gives a completed recipe.
// Zero means the dimension was left unset.
type Ratings struct {
	Cost       int `json:"cost" validate:"required,min=1,max=5"`
	Taste      int `json:"taste" validate:"required,min=1,max=5"`
	Difficulty int `json:"difficulty" validate:"required,min=1,max=5"`
}

// RatedRecipe is an archived recipe with its ratings and aggregate score
type RatedRecipe struct {
	ID          uuid.UUID `json:"id"`
	Recipe      Recipe    `json:"recipe"`
	Ratings     Ratings   `json:"ratings"`
	TotalScore  float64   `json:"totalScore"`
	CompletedAt time.Time `json:"dateCompleted"`
}
