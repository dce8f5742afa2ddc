package handle

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a handle is used after Release.
	ErrReleased = errors.New("handle already released")

	// ErrUnknown is returned for handles the registry never issued,
	// including the zero Handle.
	ErrUnknown = errors.New("unknown handle")
)

// HandleError records the operation and handle that were rejected.
type HandleError struct {
	Op     string
	Handle Handle
	Err    error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Handle, e.Err)
}

func (e *HandleError) Unwrap() error { return e.Err }
