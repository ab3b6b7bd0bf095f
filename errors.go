package mico

import (
	"errors"
	"fmt"
)

// ErrNegativeIndent is reported when an indentation width below zero is
// requested.
var ErrNegativeIndent = errors.New("indent must be a non-negative integer")

// An OptionError reports an invalid value passed to an Option.
type OptionError struct {
	Option string
	Value  any
	Err    error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("mico: invalid %s option %v: %v", e.Option, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error { return e.Err }
