package form

// Decision is the outcome of a discard confirmation.
type Decision int

const (
	// Stay cancels the leave action and keeps the edits.
	Stay Decision = iota
	// Discard drops the edits and lets the leave action proceed.
	Discard
)

// Confirmer presents the binary discard/stay choice to the user.
type Confirmer interface {
	ConfirmDiscard() Decision
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func() Decision

func (f ConfirmerFunc) ConfirmDiscard() Decision { return f() }

// Guard wraps a "leave this form" trigger. A Clean controller leaves
// immediately; a Dirty one suspends the action behind a confirmation.
type Guard struct {
	controller *Controller
	confirmer  Confirmer
	pending    bool
}

// NewGuard creates a guard over the controller using the given confirmer.
func NewGuard(c *Controller, confirmer Confirmer) *Guard {
	return &Guard{controller: c, confirmer: confirmer}
}

// Leave runs action if leaving is allowed and reports whether it ran.
//
// Clean: the action executes immediately, no prompt. Dirty: the confirmer
// decides — Discard resets the form and executes the action, Stay cancels
// it and leaves the editable state untouched. Re-entrant: a second trigger
// while the confirmation is pending is a no-op, so the action can neither
// double-run nor double-reset.
func (g *Guard) Leave(action func()) bool {
	if !g.controller.Dirty() {
		action()
		return true
	}

	if g.pending {
		return false
	}
	g.pending = true
	decision := g.confirmer.ConfirmDiscard()
	g.pending = false

	if decision != Discard {
		return false
	}
	g.controller.Reset()
	action()
	return true
}
