// Package pantry tracks which bulk staples are already stocked at home.
package pantry

import (
	"sort"
	"strings"
	"sync"
)

// DefaultBulkItems returns the staples tracked when no configuration overrides them
func DefaultBulkItems() map[string]bool {
	return map[string]bool{
		"greek yogurt":  false,
		"hemp seeds":    true,
		"blueberries":   true,
		"granola":       false,
		"peanut butter": false,
	}
}

// Item is a staple and whether it is stocked
type Item struct {
	Name    string `json:"name"`
	Stocked bool   `json:"stocked"`
}

// Tracker holds the stocked flag of each bulk staple for the life of the process.
// Names are matched case-insensitively. The version changes whenever a staple is added,
// which is the only thing that moves an item's position in Items.
type Tracker struct {
	mu      sync.RWMutex
	flags   map[string]bool
	version uint64
}

// NewTracker seeds a tracker from defaults. A nil map uses DefaultBulkItems.
func NewTracker(defaults map[string]bool) *Tracker {
	if defaults == nil {
		defaults = DefaultBulkItems()
	}
	flags := make(map[string]bool, len(defaults))
	for name, stocked := range defaults {
		if key := normalizeName(name); key != "" {
			flags[key] = stocked
		}
	}
	return &Tracker{flags: flags}
}

// Toggle flips the stocked flag of item and returns the new value.
// An untracked item starts as not stocked, so its first toggle returns true.
func (t *Tracker) Toggle(item string) bool {
	key := normalizeName(item)

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, tracked := t.flags[key]; !tracked {
		t.version++
	}
	t.flags[key] = !t.flags[key]
	return t.flags[key]
}

// Stocked reports whether item is stocked
func (t *Tracker) Stocked(item string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.flags[normalizeName(item)]
}

// Flags returns a copy of all flags
func (t *Tracker) Flags() map[string]bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]bool, len(t.flags))
	for k, v := range t.flags {
		out[k] = v
	}
	return out
}

// Items returns every tracked staple sorted by name
func (t *Tracker) Items() []Item {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sortedItems()
}

// Snapshot returns Items together with the version they were read at
func (t *Tracker) Snapshot() ([]Item, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sortedItems(), t.version
}

func (t *Tracker) sortedItems() []Item {
	items := make([]Item, 0, len(t.flags))
	for name, stocked := range t.flags {
		items = append(items, Item{Name: name, Stocked: stocked})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
