// Package storage provides the offline JSON snapshot cache.
//
// After a successful fetch the event list and reference collections are
// written to a single snapshot file in the data directory. When the API is
// unreachable, list and show fall back to the cached snapshot so the last
// known state stays browsable. The default location is
// ~/.local/share/eventdesk/.
package storage
