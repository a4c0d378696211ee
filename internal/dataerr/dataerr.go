// Package dataerr provides the standardized error type for fatal input-data
// problems. All catalog parse failures go through this package so callers can
// tell bad source data apart from I/O failures.
package dataerr

import (
	"errors"
	"fmt"
)

// DataError is the canonical envelope for unrecoverable data errors.
type DataError struct {
	Detail string
}

func (e *DataError) Error() string { return e.Detail }

func New(msg string) *DataError {
	return &DataError{Detail: msg}
}

func Newf(format string, args ...any) *DataError {
	return &DataError{Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is (or wraps) a DataError.
func Is(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}
