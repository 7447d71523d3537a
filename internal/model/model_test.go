package model

import (
	"encoding/json"
	"testing"
)

func TestHasCategory(t *testing.T) {
	evt := Event{CategoryIDs: []int64{1, 3}}
	if !evt.HasCategory(3) {
		t.Error("HasCategory(3) = false, want true")
	}
	if evt.HasCategory(2) {
		t.Error("HasCategory(2) = true, want false")
	}
}

func TestEventInputEvent(t *testing.T) {
	in := EventInput{
		Title:       "Launch",
		Description: "Kickoff",
		StartTime:   "2026-06-01T18:30:00Z",
		EndTime:     "2026-06-01T21:00:00Z",
		CategoryIDs: []int64{1},
		CreatedBy:   10,
	}

	evt := in.Event(7)
	if evt.ID != 7 {
		t.Errorf("ID = %d, want 7", evt.ID)
	}
	if evt.Title != in.Title || evt.CreatedBy != in.CreatedBy {
		t.Errorf("fields not carried over: %+v", evt)
	}
}

func TestEventWireNames(t *testing.T) {
	evt := Event{ID: 1, StartTime: "2026-06-01T18:30:00Z", CategoryIDs: []int64{1}, CreatedBy: 10}
	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"startTime", "endTime", "categoryIds", "createdBy"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("wire record missing %q: %s", key, data)
		}
	}
}
