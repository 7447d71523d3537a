// Package filter derives the visible subset of events for the list view.
//
// Two predicates are supported and ANDed: a case-insensitive substring
// match of a search term against the event title, and membership of a
// selected category id in the event's category set. Filtering is a pure
// function of its inputs and preserves the original list order, which keeps
// it trivially property-testable.
package filter

import (
	"fmt"
	"strings"

	"eventdesk/internal/model"
)

// Filter represents the list view's filtering criteria.
type Filter struct {
	// Term is matched case-insensitively against event titles.
	// An empty term matches all events.
	Term string

	// CategoryID restricts the list to events referencing this category.
	// Zero means no category is selected and all events pass.
	CategoryID int64
}

// IsEmpty reports whether the filter has any active criteria.
func (f Filter) IsEmpty() bool {
	return f.Term == "" && f.CategoryID == 0
}

// Matches reports whether an event passes all active criteria.
func (f Filter) Matches(evt *model.Event) bool {
	if f.Term != "" {
		if !strings.Contains(strings.ToLower(evt.Title), strings.ToLower(f.Term)) {
			return false
		}
	}

	if f.CategoryID != 0 {
		if !evt.HasCategory(f.CategoryID) {
			return false
		}
	}

	return true
}

// Apply returns the events that match, in their original order. An empty
// filter returns the input unchanged.
func (f Filter) Apply(events []model.Event) []model.Event {
	if f.IsEmpty() {
		return events
	}

	filtered := make([]model.Event, 0, len(events))
	for i := range events {
		if f.Matches(&events[i]) {
			filtered = append(filtered, events[i])
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
func (f Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.Term != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", f.Term))
	}
	if f.CategoryID != 0 {
		parts = append(parts, fmt.Sprintf("Category: %d", f.CategoryID))
	}
	return strings.Join(parts, " | ")
}
