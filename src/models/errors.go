package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the server services and the client SDK.
//
// Only NetworkError may ever be translated into an offline-queue outcome;
// every other class is surfaced to the caller as-is.

// ValidationError - malformed or incomplete input. Never retried, never queued.
type ValidationError struct {
	Message string
	Missing []string // question ids absent from the response set, if any
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s (missing: %v)", e.Message, e.Missing)
	}
	return e.Message
}

// AuthError - missing, expired or invalid credential.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// NotFoundError - the record does not exist for this owner.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// NetworkError - timeout, connection refused, DNS failure. The only class
// that triggers offline queueing.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network failure during %s: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// StorageError - local persistence medium failure. Fatal to the current
// operation, surfaced, not swallowed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// IsNetworkError reports whether err is network-class.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}
