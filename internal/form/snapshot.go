package form

import (
	"sort"

	"eventdesk/internal/model"
)

// FieldState holds the editable fields of the event form. Times use the
// minute-precision local editing representation; CategoryIDs is kept as a
// canonical sorted set so divergence never depends on insertion order.
type FieldState struct {
	Title       string
	Description string
	Image       string
	StartTime   string
	EndTime     string
	CategoryIDs []int64
	CreatedBy   int64
}

// FormSnapshot is the last state the controller treats as saved: the field
// values plus their id-resolution labels. It is replaced atomically on a
// successful commit or an explicit re-seed, never mutated in place by
// consumers.
type FormSnapshot struct {
	FieldState

	CategoryNames   []string
	CreatorName     string
	CreatorResolved bool
}

// Derive maps a raw event and the current reference collections into a
// FormSnapshot. A nil event yields the empty defaults for a creation form.
// Category ids with no matching category are silently dropped from the
// selection; a creator with no matching user is marked unresolved and
// rejected later at submit time.
func Derive(evt *model.Event, categories []model.Category, users []model.User) FormSnapshot {
	if evt == nil {
		return FormSnapshot{
			FieldState:    FieldState{CategoryIDs: []int64{}},
			CategoryNames: []string{},
		}
	}

	ids, names := resolveCategories(evt.CategoryIDs, categories)
	creatorName, resolved := resolveCreator(evt.CreatedBy, users)

	return FormSnapshot{
		FieldState: FieldState{
			Title:       evt.Title,
			Description: evt.Description,
			Image:       evt.Image,
			StartTime:   model.EditValue(evt.StartTime),
			EndTime:     model.EditValue(evt.EndTime),
			CategoryIDs: ids,
			CreatedBy:   evt.CreatedBy,
		},
		CategoryNames:   names,
		CreatorName:     creatorName,
		CreatorResolved: resolved,
	}
}

// resolveCategories returns the sorted subset of ids present in categories
// and their labels in the same order. Unknown ids do not error; they are
// absent from both results.
func resolveCategories(ids []int64, categories []model.Category) ([]int64, []string) {
	names := make(map[int64]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	resolved := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if _, ok := names[id]; ok && !seen[id] {
			resolved = append(resolved, id)
			seen[id] = true
		}
	}
	sort.Slice(resolved, func(i, j int) bool { return resolved[i] < resolved[j] })

	labels := make([]string, len(resolved))
	for i, id := range resolved {
		labels[i] = names[id]
	}
	return resolved, labels
}

// resolveCreator looks the creator up in the user collection.
func resolveCreator(id int64, users []model.User) (string, bool) {
	for _, u := range users {
		if u.ID == id {
			return u.Name, true
		}
	}
	return "", false
}

// NormalizeIDSet returns a sorted, deduplicated copy of ids: the canonical
// representation used for set equality.
func NormalizeIDSet(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// equal compares field states. Both id sets are canonical, so slice
// comparison is set comparison.
func (f FieldState) equal(o FieldState) bool {
	if f.Title != o.Title ||
		f.Description != o.Description ||
		f.Image != o.Image ||
		f.StartTime != o.StartTime ||
		f.EndTime != o.EndTime ||
		f.CreatedBy != o.CreatedBy {
		return false
	}
	if len(f.CategoryIDs) != len(o.CategoryIDs) {
		return false
	}
	for i := range f.CategoryIDs {
		if f.CategoryIDs[i] != o.CategoryIDs[i] {
			return false
		}
	}
	return true
}

// clone returns a copy with its own id slice.
func (f FieldState) clone() FieldState {
	out := f
	out.CategoryIDs = append([]int64(nil), f.CategoryIDs...)
	return out
}

// clone returns a deep copy of the snapshot.
func (s FormSnapshot) clone() FormSnapshot {
	out := s
	out.FieldState = s.FieldState.clone()
	out.CategoryNames = append([]string(nil), s.CategoryNames...)
	return out
}
