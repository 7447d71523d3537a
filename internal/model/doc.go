// Package model defines the records exchanged with the events API.
//
// Events reference two auxiliary entity sets by id: categories and users.
// Both reference collections are immutable once fetched; identity is the
// numeric id. Start and end times travel as ISO-8601 strings on the wire and
// are truncated to minute precision only for in-form editing.
package model
