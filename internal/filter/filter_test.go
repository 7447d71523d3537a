package filter

import (
	"reflect"
	"testing"

	"eventdesk/internal/model"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: 1, Title: "Abba Night", CategoryIDs: []int64{1}},
		{ID: 2, Title: "Rock Concert", CategoryIDs: []int64{1, 2}},
		{ID: 3, Title: "cabbage fest", CategoryIDs: []int64{3}},
		{ID: 4, Title: "Marathon", CategoryIDs: []int64{2}},
	}
}

func titles(events []model.Event) []string {
	out := make([]string, len(events))
	for i, evt := range events {
		out[i] = evt.Title
	}
	return out
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero value", Filter{}, true},
		{"term only", Filter{Term: "x"}, false},
		{"category only", Filter{CategoryID: 2}, false},
		{"both", Filter{Term: "x", CategoryID: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyEmptyFilterReturnsAllInOrder(t *testing.T) {
	events := sampleEvents()
	got := Filter{}.Apply(events)
	if !reflect.DeepEqual(got, events) {
		t.Errorf("empty filter changed the list: %v", titles(got))
	}
}

func TestApplyTerm(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case-insensitive substring", "ab", []string{"Abba Night", "cabbage fest"}},
		{"upper-case query", "ROCK", []string{"Rock Concert"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter{Term: tt.term}.Apply(sampleEvents())
			if !reflect.DeepEqual(titles(got), tt.want) {
				t.Errorf("Apply() = %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestApplyCategory(t *testing.T) {
	got := Filter{CategoryID: 2}.Apply(sampleEvents())
	want := []string{"Rock Concert", "Marathon"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Apply() = %v, want %v", titles(got), want)
	}
}

func TestApplyCombined(t *testing.T) {
	f := Filter{Term: "rock", CategoryID: 2}
	got := f.Apply(sampleEvents())
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Apply() = %v, want only Rock Concert", titles(got))
	}
}

func TestMatchesRequiresBothCriteria(t *testing.T) {
	evt := model.Event{Title: "Rock Concert", CategoryIDs: []int64{1}}
	f := Filter{Term: "rock", CategoryID: 2}
	if f.Matches(&evt) {
		t.Error("event missing the category should not match")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{"empty", Filter{}, "No active filters"},
		{"term", Filter{Term: "rock"}, `Search: "rock"`},
		{"category", Filter{CategoryID: 2}, "Category: 2"},
		{"both", Filter{Term: "rock", CategoryID: 2}, `Search: "rock" | Category: 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
