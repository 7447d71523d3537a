package api

import "fmt"

// SyncFailure reports a failed network call: a transport error or a non-2xx
// response. The failing operation is recoverable by retrying the identical
// submit; no endpoint-specific status branching is done.
type SyncFailure struct {
	Op      string
	Message string
	Err     error
}

func (f *SyncFailure) Error() string {
	return fmt.Sprintf("%s: %s", f.Op, f.Message)
}

func (f *SyncFailure) Unwrap() error {
	return f.Err
}

// statusFailure builds a SyncFailure for a non-2xx response.
func statusFailure(op string, status int) *SyncFailure {
	return &SyncFailure{Op: op, Message: fmt.Sprintf("unexpected status code: %d", status)}
}

// transportFailure builds a SyncFailure wrapping a transport or decode error.
func transportFailure(op string, err error) *SyncFailure {
	return &SyncFailure{Op: op, Message: err.Error(), Err: err}
}
