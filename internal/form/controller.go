package form

import (
	"context"

	"eventdesk/internal/model"
)

// Gateway performs the create/update network calls. Exactly one call per
// submit; failures leave form state untouched so the user can resubmit.
type Gateway interface {
	CreateEvent(ctx context.Context, in model.EventInput) (*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, in model.EventInput) (*model.Event, error)
}

// Controller owns the editable form state for one event form and tracks
// divergence from the last committed snapshot. A nil backing event means
// the form creates a new record on submit.
//
// Not safe for concurrent use; a Controller belongs to the goroutine that
// drives its form.
type Controller struct {
	event      *model.Event
	saved      FormSnapshot
	fields     FieldState
	categories []model.Category
	users      []model.User
}

// NewController seeds a controller from the derivation of evt against the
// current reference collections. The initial state is Clean.
func NewController(evt *model.Event, categories []model.Category, users []model.User) *Controller {
	snap := Derive(evt, categories, users)
	return &Controller{
		event:      evt,
		saved:      snap,
		fields:     snap.FieldState.clone(),
		categories: categories,
		users:      users,
	}
}

// Dirty reports whether any editable field differs from the saved snapshot.
func (c *Controller) Dirty() bool {
	return !c.fields.equal(c.saved.FieldState)
}

// Fields returns a copy of the live editable state.
func (c *Controller) Fields() FieldState {
	return c.fields.clone()
}

// Saved returns a copy of the last committed snapshot.
func (c *Controller) Saved() FormSnapshot {
	return c.saved.clone()
}

// Event returns the backing event, nil for a creation form.
func (c *Controller) Event() *model.Event {
	return c.event
}

func (c *Controller) SetTitle(v string)       { c.fields.Title = v }
func (c *Controller) SetDescription(v string) { c.fields.Description = v }
func (c *Controller) SetImage(v string)       { c.fields.Image = v }
func (c *Controller) SetStartTime(v string)   { c.fields.StartTime = v }
func (c *Controller) SetEndTime(v string)     { c.fields.EndTime = v }
func (c *Controller) SetCreatedBy(id int64)   { c.fields.CreatedBy = id }

// SetCategoryIDs replaces the selected category set. The input is
// normalized to the canonical sorted set, so two selections with the same
// members never diverge.
func (c *Controller) SetCategoryIDs(ids []int64) {
	c.fields.CategoryIDs = NormalizeIDSet(ids)
}

// Reset discards edits, forcing the editable state back to the saved
// snapshot. Idempotent.
func (c *Controller) Reset() {
	c.fields = c.saved.FieldState.clone()
}

// Commit atomically replaces both the saved snapshot and the live editable
// state after a successful save. The controller is Clean afterwards.
func (c *Controller) Commit(snap FormSnapshot) {
	c.saved = snap.clone()
	c.fields = snap.FieldState.clone()
}

// ApplyReference delivers updated reference collections to the controller.
//
// If the controller is Clean, both the saved snapshot and the editable
// state are re-seeded from a fresh derivation: previously-unresolved ids
// pick up their labels. If the controller is Dirty, the editable fields are
// never overwritten; only the saved snapshot's resolution labels refresh,
// so the divergence comparison stays accurate against the fields the user
// touched. Either way the new collections are used for later validation.
func (c *Controller) ApplyReference(categories []model.Category, users []model.User) {
	c.categories = categories
	c.users = users

	if !c.Dirty() {
		snap := Derive(c.event, categories, users)
		c.saved = snap
		c.fields = snap.FieldState.clone()
		return
	}

	_, names := resolveCategories(c.saved.CategoryIDs, categories)
	c.saved.CategoryNames = names
	c.saved.CreatorName, c.saved.CreatorResolved = resolveCreator(c.saved.CreatedBy, users)
}

// Submit validates the editable state and writes it through the gateway.
//
// A Clean controller short-circuits: saving unmodified data is wasted work,
// so Submit returns the backing event immediately with no network call.
// Validation failure returns a *ValidationError before any network call.
// A gateway failure is returned with all form state intact. On success the
// server's returned event becomes the backing event and its derivation is
// committed; the locally-built payload is never trusted as the new
// snapshot.
func (c *Controller) Submit(ctx context.Context, gw Gateway) (*model.Event, error) {
	if !c.Dirty() {
		return c.event, nil
	}

	if verr := c.Validate(); verr != nil {
		return nil, verr
	}

	in := c.payload()
	var (
		evt *model.Event
		err error
	)
	if c.event == nil {
		evt, err = gw.CreateEvent(ctx, in)
	} else {
		evt, err = gw.UpdateEvent(ctx, c.event.ID, in)
	}
	if err != nil {
		return nil, err
	}

	c.event = evt
	c.Commit(Derive(evt, c.categories, c.users))
	return evt, nil
}

// payload converts the editable state to the wire input: editing times
// expand back to full ISO-8601, the id set travels in canonical order.
func (c *Controller) payload() model.EventInput {
	return model.EventInput{
		Title:       c.fields.Title,
		Description: c.fields.Description,
		Image:       c.fields.Image,
		StartTime:   model.WireValue(c.fields.StartTime),
		EndTime:     model.WireValue(c.fields.EndTime),
		CategoryIDs: append([]int64(nil), c.fields.CategoryIDs...),
		CreatedBy:   c.fields.CreatedBy,
	}
}
