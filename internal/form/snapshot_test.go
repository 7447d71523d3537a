package form

import (
	"reflect"
	"testing"

	"eventdesk/internal/model"
)

var testCategories = []model.Category{
	{ID: 1, Name: "Music"},
	{ID: 2, Name: "Sports"},
	{ID: 3, Name: "Food"},
}

var testUsers = []model.User{
	{ID: 10, Name: "Alice"},
	{ID: 11, Name: "Bob"},
}

func TestDeriveNilEvent(t *testing.T) {
	snap := Derive(nil, testCategories, testUsers)

	if snap.Title != "" || snap.Description != "" || snap.Image != "" {
		t.Errorf("nil event should derive empty text fields, got %+v", snap.FieldState)
	}
	if snap.StartTime != "" || snap.EndTime != "" {
		t.Errorf("nil event should derive empty times, got start=%q end=%q", snap.StartTime, snap.EndTime)
	}
	if snap.CategoryIDs == nil || len(snap.CategoryIDs) != 0 {
		t.Errorf("nil event should derive an empty id set, got %v", snap.CategoryIDs)
	}
	if snap.CreatorResolved {
		t.Error("nil event should not resolve a creator")
	}
}

func TestDeriveResolvesCategories(t *testing.T) {
	tests := []struct {
		name      string
		ids       []int64
		wantIDs   []int64
		wantNames []string
	}{
		{
			name:      "all known",
			ids:       []int64{2, 1},
			wantIDs:   []int64{1, 2},
			wantNames: []string{"Music", "Sports"},
		},
		{
			name:      "unknown ids dropped",
			ids:       []int64{1, 99, 3},
			wantIDs:   []int64{1, 3},
			wantNames: []string{"Music", "Food"},
		},
		{
			name:      "duplicates collapse",
			ids:       []int64{2, 2, 1, 2},
			wantIDs:   []int64{1, 2},
			wantNames: []string{"Music", "Sports"},
		},
		{
			name:      "none known",
			ids:       []int64{98, 99},
			wantIDs:   []int64{},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := &model.Event{ID: 1, CategoryIDs: tt.ids, CreatedBy: 10}
			snap := Derive(evt, testCategories, testUsers)
			if !reflect.DeepEqual(snap.CategoryIDs, tt.wantIDs) {
				t.Errorf("CategoryIDs = %v, want %v", snap.CategoryIDs, tt.wantIDs)
			}
			if !reflect.DeepEqual(snap.CategoryNames, tt.wantNames) {
				t.Errorf("CategoryNames = %v, want %v", snap.CategoryNames, tt.wantNames)
			}
		})
	}
}

func TestDeriveCreatorResolution(t *testing.T) {
	known := &model.Event{ID: 1, CreatedBy: 11}
	snap := Derive(known, testCategories, testUsers)
	if !snap.CreatorResolved || snap.CreatorName != "Bob" {
		t.Errorf("creator 11 should resolve to Bob, got %q resolved=%v", snap.CreatorName, snap.CreatorResolved)
	}

	unknown := &model.Event{ID: 1, CreatedBy: 404}
	snap = Derive(unknown, testCategories, testUsers)
	if snap.CreatorResolved || snap.CreatorName != "" {
		t.Errorf("creator 404 should be unresolved, got %q resolved=%v", snap.CreatorName, snap.CreatorResolved)
	}
	if snap.CreatedBy != 404 {
		t.Errorf("unresolved creator id should survive, got %d", snap.CreatedBy)
	}
}

func TestDeriveTruncatesTimes(t *testing.T) {
	evt := &model.Event{
		ID:        1,
		StartTime: "2026-06-01T18:30:00",
		EndTime:   "2026-06-01T21:45:59",
		CreatedBy: 10,
	}
	snap := Derive(evt, testCategories, testUsers)
	if snap.StartTime != "2026-06-01T18:30" {
		t.Errorf("StartTime = %q, want minute precision", snap.StartTime)
	}
	if snap.EndTime != "2026-06-01T21:45" {
		t.Errorf("EndTime = %q, want minute precision", snap.EndTime)
	}
}

func TestNormalizeIDSet(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"empty", nil, []int64{}},
		{"already canonical", []int64{1, 2, 3}, []int64{1, 2, 3}},
		{"unsorted", []int64{3, 1, 2}, []int64{1, 2, 3}},
		{"duplicates", []int64{2, 1, 2, 1}, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeIDSet(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeIDSet(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldStateEqualIgnoresIDOrderAfterNormalize(t *testing.T) {
	a := FieldState{Title: "x", CategoryIDs: NormalizeIDSet([]int64{2, 1})}
	b := FieldState{Title: "x", CategoryIDs: NormalizeIDSet([]int64{1, 2})}
	if !a.equal(b) {
		t.Error("normalized sets with the same members should compare equal")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := FieldState{Title: "x", CategoryIDs: []int64{1, 2}}
	cp := orig.clone()
	cp.CategoryIDs[0] = 99
	if orig.CategoryIDs[0] != 1 {
		t.Error("clone shares the id slice with its source")
	}
}
