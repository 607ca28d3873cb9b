// Package ratings keeps the append-only archive of completed, rated recipes.
package ratings

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/meal-planner/internal/types"
)

// IncompleteMessage is the ValidationError message for a rating with an unset or out-of-range score
const IncompleteMessage = "incomplete rating"

// DefaultLeaderboardSize is used when Leaderboard is called with a non-positive limit
const DefaultLeaderboardSize = 10

var validate = types.NewValidator()

// Archive is an in-memory, append-only list of rated recipes
type Archive struct {
	mu      sync.RWMutex
	entries []types.RatedRecipe
	now     func() time.Time
}

// Option configures an Archive
type Option func(*Archive)

// WithClock sets the time source used for completion timestamps
func WithClock(now func() time.Time) Option {
	return func(a *Archive) {
		a.now = now
	}
}

// NewArchive creates an empty archive
func NewArchive(opts ...Option) *Archive {
	a := &Archive{now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Score is the mean of the three ratings rounded to one decimal place
func Score(r types.Ratings) float64 {
	mean := float64(r.Cost+r.Taste+r.Difficulty) / 3
	return math.Round(mean*10) / 10
}

// Submit validates r and appends recipe with its score.
// A rating with any dimension unset or outside 1-5 is rejected and nothing is appended.
func (a *Archive) Submit(recipe types.Recipe, r types.Ratings) (*types.RatedRecipe, error) {
	if err := types.ValidateStruct(validate, r, IncompleteMessage); err != nil {
		return nil, err
	}
	if err := types.ValidateStruct(validate, recipe, "incomplete recipe"); err != nil {
		return nil, err
	}

	entry := types.RatedRecipe{
		ID:          uuid.New(),
		Recipe:      recipe,
		Ratings:     r,
		TotalScore:  Score(r),
		CompletedAt: a.now(),
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()

	return &entry, nil
}

// Leaderboard returns up to limit entries by descending score.
// Equal scores keep submission order. A non-positive limit means DefaultLeaderboardSize.
func (a *Archive) Leaderboard(limit int) []types.RatedRecipe {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	sorted := a.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore > sorted[j].TotalScore
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// All returns a copy of the archive in submission order
func (a *Archive) All() []types.RatedRecipe {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]types.RatedRecipe, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len returns the number of archived entries
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return len(a.entries)
}
