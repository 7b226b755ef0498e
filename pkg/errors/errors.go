package errors

import "errors"

// ErrInvalidDate is returned when a report date cannot be parsed as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ErrFactoryNotFound is returned when no factory exists for the given code.
var ErrFactoryNotFound = errors.New("factory not found")
