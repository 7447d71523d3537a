// Package api is the HTTP client for the events REST API.
//
// The client performs the create/update/delete calls for events plus the
// one-shot list/get fetches for events, categories, and users. Each
// operation issues exactly one network call; there is no automatic retry.
// Transport errors and non-2xx statuses are reported uniformly as a
// *SyncFailure so callers can keep their form state intact and resubmit.
package api
