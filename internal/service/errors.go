package service

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable is returned by Initialize when the backend cannot be
// reached or its schema cannot be brought up to date.
var ErrStorageUnavailable = errors.New("storage unavailable")

const (
	FieldDate        = "date"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
)

// ValidationError rejects a single input field. Nothing has been written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError reports a read or write that failed after validation passed.
// Writes are rolled back before it is returned, so the operation can be retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
