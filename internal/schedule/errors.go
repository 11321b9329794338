package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrCapabilityUnavailable = errors.New("notifications are not available in this build")
	ErrPermissionRequired    = errors.New("notification permission required")
	ErrInvalidTime           = errors.New("scheduled time must be in the future")
)

// AdapterError reports a failing call into the notification service.
type AdapterError struct {
	Op  string
	Err error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("notification service %s: %v", e.Op, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

func adapterError(op string, err error) *AdapterError {
	return &AdapterError{Op: op, Err: err}
}

// IsAdapterFailure reports whether err came from the notification service.
func IsAdapterFailure(err error) bool {
	var adapterErr *AdapterError

	return errors.As(err, &adapterErr)
}
