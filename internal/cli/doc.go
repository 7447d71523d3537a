// Package cli implements the command-line interface for eventdesk.
//
// The cli package provides the Cobra-based command tree (list, show,
// create, edit, delete) with text and JSON output. It wires the API
// client, reference-data store, form controller, and offline snapshot
// cache together; the core packages never depend on it.
package cli
