package remote

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrRemote   = errors.New("remote: request failed")
	ErrNotFound = errors.New("remote: not found")
	ErrConflict = errors.New("remote: conflict")
)

// Error describes a failed REST call. Status is zero when no response was
// received; Err then holds the transport error.
type Error struct {
	Op       string
	Resource string
	Status   int
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote: %s %s: %v", e.Op, e.Resource, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("remote: %s %s: status %d: %s", e.Op, e.Resource, e.Status, e.Detail)
	}
	return fmt.Sprintf("remote: %s %s: status %d", e.Op, e.Resource, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers branch on the sentinel kinds without inspecting Status.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrConflict:
		return e.Status == http.StatusConflict
	}
	return false
}
