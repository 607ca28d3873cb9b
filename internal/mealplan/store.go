// Package mealplan holds the current weekly plan and its shopping checklist.
package mealplan

import (
	"sync"

	"github.com/jonathan/meal-planner/internal/types"
)

// ItemKey addresses one shopping list line by category and item text
type ItemKey struct {
	Category string `json:"category" validate:"required"`
	Item     string `json:"item" validate:"required"`
}

// CheckedItemSet is the set of shopping list lines marked as bought
type CheckedItemSet map[ItemKey]struct{}

// Has reports whether key is checked
func (s CheckedItemSet) Has(key ItemKey) bool {
	_, ok := s[key]
	return ok
}

// Keys returns the checked keys in no particular order
func (s CheckedItemSet) Keys() []ItemKey {
	keys := make([]ItemKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Store owns the current plan and checklist.
// Replacing the plan always clears the checklist and bumps the plan version.
type Store struct {
	mu      sync.RWMutex
	plan    *types.MealPlan
	version uint64
	checked CheckedItemSet
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{checked: make(CheckedItemSet)}
}

// SetPlan replaces the current plan and clears every checked item
func (s *Store) SetPlan(plan *types.MealPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plan = plan
	s.version++
	s.checked = make(CheckedItemSet)
}

// Snapshot returns the current plan with its version. Version 0 means no plan was ever set.
func (s *Store) Snapshot() (*types.MealPlan, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.plan, s.version, s.plan != nil
}

// Current returns the current plan, if one has been generated
func (s *Store) Current() (*types.MealPlan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.plan, s.plan != nil
}

// ToggleChecked flips the membership of (category, item) and returns the new state.
// Toggling is its own inverse.
func (s *Store) ToggleChecked(category, item string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ItemKey{Category: category, Item: item}
	if s.checked.Has(key) {
		delete(s.checked, key)
		return false
	}
	s.checked[key] = struct{}{}
	return true
}

// ToggleCheckedAt is ToggleChecked for a caller that read the plan at version.
// ok is false, and nothing changes, when another plan has replaced it since.
func (s *Store) ToggleCheckedAt(version uint64, category, item string) (on bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plan == nil || s.version != version {
		return false, false
	}
	key := ItemKey{Category: category, Item: item}
	if s.checked.Has(key) {
		delete(s.checked, key)
		return false, true
	}
	s.checked[key] = struct{}{}
	return true, true
}

// IsChecked reports whether (category, item) is checked
func (s *Store) IsChecked(category, item string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.checked.Has(ItemKey{Category: category, Item: item})
}

// Checked returns a copy of the checklist
func (s *Store) Checked() CheckedItemSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(CheckedItemSet, len(s.checked))
	for k := range s.checked {
		out[k] = struct{}{}
	}
	return out
}
