package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTracker_Defaults(t *testing.T) {
	tracker := NewTracker(nil)

	assert.Equal(t, DefaultBulkItems(), tracker.Flags())
	assert.True(t, tracker.Stocked("hemp seeds"))
	assert.True(t, tracker.Stocked("Blueberries"))
	assert.False(t, tracker.Stocked("greek yogurt"))
}

func TestNewTracker_NormalizesConfiguredNames(t *testing.T) {
	tracker := NewTracker(map[string]bool{" Oats ": true, "": true})

	assert.Equal(t, map[string]bool{"oats": true}, tracker.Flags())
}

func TestTracker_Toggle(t *testing.T) {
	tracker := NewTracker(nil)

	assert.True(t, tracker.Toggle("Granola"))
	assert.True(t, tracker.Stocked("granola"))
	assert.False(t, tracker.Toggle("granola"))
	assert.False(t, tracker.Stocked("granola"))
}

func TestTracker_ToggleUntracked(t *testing.T) {
	tracker := NewTracker(map[string]bool{})

	assert.True(t, tracker.Toggle("chia seeds"))
	assert.Equal(t, []Item{{Name: "chia seeds", Stocked: true}}, tracker.Items())
}

func TestTracker_FlagsIsACopy(t *testing.T) {
	tracker := NewTracker(nil)

	flags := tracker.Flags()
	flags["hemp seeds"] = false

	assert.True(t, tracker.Stocked("hemp seeds"))
}

func TestTracker_ItemsSorted(t *testing.T) {
	items := NewTracker(nil).Items()

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"blueberries", "granola", "greek yogurt", "hemp seeds", "peanut butter"}, names)
}

func TestTracker_SnapshotVersion(t *testing.T) {
	tracker := NewTracker(nil)

	_, before := tracker.Snapshot()

	tracker.Toggle("granola")
	_, afterToggle := tracker.Snapshot()
	assert.Equal(t, before, afterToggle, "flipping a tracked staple keeps positions")

	tracker.Toggle("Chia Seeds")
	items, afterAdd := tracker.Snapshot()
	assert.NotEqual(t, before, afterAdd)
	assert.Equal(t, Item{Name: "chia seeds", Stocked: true}, items[1])
}
