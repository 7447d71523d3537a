package model

// Category is a reference entity used to label events.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// User is a reference entity; events record their creator as a user id.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Event is the primary record. CategoryIDs and CreatedBy are foreign-key
// style references into the Category and User collections.
type Event struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	CategoryIDs []int64 `json:"categoryIds"`
	CreatedBy   int64   `json:"createdBy"`
}

// EventInput is an Event without a server-assigned id, used as the body of
// create and update calls. The validate tags cover the non-empty rules;
// creator resolution and chronological ordering are checked separately
// because they need the reference collections and parsed timestamps.
type EventInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"`
	StartTime   string  `json:"startTime" validate:"required"`
	EndTime     string  `json:"endTime" validate:"required"`
	CategoryIDs []int64 `json:"categoryIds"`
	CreatedBy   int64   `json:"createdBy" validate:"required"`
}

// Event builds the full wire record for a PUT, which carries the id in the
// body as well as the path.
func (in EventInput) Event(id int64) Event {
	return Event{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		CategoryIDs: in.CategoryIDs,
		CreatedBy:   in.CreatedBy,
	}
}

// HasCategory reports whether the event references the given category id.
func (e *Event) HasCategory(id int64) bool {
	for _, cid := range e.CategoryIDs {
		if cid == id {
			return true
		}
	}
	return false
}
