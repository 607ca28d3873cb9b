package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/meal-planner/internal/mealplan"
	"github.com/jonathan/meal-planner/internal/types"
)

// ToggleRequest is the body of POST /plan/checklist/toggle
type ToggleRequest struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}

// ToggleResponse reports the state of a toggled item
type ToggleResponse struct {
	Category string `json:"category,omitempty"`
	Item     string `json:"item"`
	Checked  bool   `json:"checked"`
}

// PantryToggleResponse reports the stocked flag of a toggled staple
type PantryToggleResponse struct {
	Item    string `json:"item"`
	Stocked bool   `json:"stocked"`
}

// RatingRequest is the body of POST /ratings
type RatingRequest struct {
	Recipe  types.Recipe  `json:"recipe"`
	Ratings types.Ratings `json:"ratings"`
}

// CancelResponse reports whether a generation was cancelled
type CancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"generating": s.app.Flow.Busy(),
	})
}

// handleOptions returns the quiz choices
func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.Options())
}

// handleGeneratePlan generates a plan from the posted preferences and makes it current.
// The request blocks until the generation service replies.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var prefs types.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	plan, err := s.app.GeneratePlan(r.Context(), prefs)
	if err != nil {
		s.commandError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, plan)
}

// handleCancelGeneration aborts the in-flight generation
func (s *Server) handleCancelGeneration(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, CancelResponse{Cancelled: s.app.CancelGeneration()})
}

// handleGetPlan returns the current plan with its checked shopping items
func (s *Server) handleGetPlan(w http.ResponseWriter, _ *http.Request) {
	view, err := s.app.CurrentPlan()
	if err != nil {
		s.commandError(w, err)
		return
	}
	if view.Checked == nil {
		view.Checked = []mealplan.ItemKey{}
	}

	s.jsonResponse(w, http.StatusOK, view)
}

// handleToggleChecklist flips one shopping list item of the current plan
func (s *Server) handleToggleChecklist(w http.ResponseWriter, r *http.Request) {
	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	checked, err := s.app.ToggleShoppingItem(req.Category, req.Item)
	if err != nil {
		s.commandError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ToggleResponse{Category: req.Category, Item: req.Item, Checked: checked})
}

// handleRatePlannedMeal rates the lunch or a weekday dinner of the current plan
func (s *Server) handleRatePlannedMeal(w http.ResponseWriter, r *http.Request) {
	var ratings types.Ratings
	if err := json.NewDecoder(r.Body).Decode(&ratings); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := s.app.RatePlannedMeal(r.PathValue("slot"), ratings)
	if err != nil {
		s.commandError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, entry)
}

// handleListPantry returns the bulk staples
func (s *Server) handleListPantry(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.PantryItems())
}

// handleTogglePantry flips the stocked flag of one staple
func (s *Server) handleTogglePantry(w http.ResponseWriter, r *http.Request) {
	item := r.PathValue("item")

	stocked, err := s.app.ToggleBulkItem(item)
	if err != nil {
		s.commandError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, PantryToggleResponse{Item: item, Stocked: stocked})
}

// handleCreateRating archives a rated recipe
func (s *Server) handleCreateRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := s.app.RateRecipe(req.Recipe, req.Ratings)
	if err != nil {
		s.commandError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, entry)
}

// handleListRatings returns the archive in completion order
func (s *Server) handleListRatings(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.Archive())
}

// handleLeaderboard returns the top rated recipes.
// Query params: limit (default 10)
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	s.jsonResponse(w, http.StatusOK, s.app.Leaderboard(limit))
}

// handleShoppingLinks returns the supported grocery stores
func (s *Server) handleShoppingLinks(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.app.ShoppingLinks())
}
