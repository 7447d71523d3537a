// Package form implements the event form state and synchronization core.
//
// Derive maps a raw event plus the current reference collections into a
// FormSnapshot: the display-ready, edit-ready representation with category
// ids resolved to labels. Controller owns the live editable fields and
// tracks divergence from the last committed snapshot; Guard gates
// destructive leave actions behind that divergence. Submit validates,
// hands a normalized payload to the sync gateway, and commits the server's
// authoritative copy back into the snapshot.
//
// A Controller is confined to a single goroutine; reference-data arrival is
// delivered to it via ApplyReference from the same goroutine that owns it.
package form
