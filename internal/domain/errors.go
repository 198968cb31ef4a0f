package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal startup failure. Every kind is fatal: the
// launcher is a one-shot bootstrap with no retry and no partial-success
// mode, because the X server's startup arguments depend on bootstrap
// having fully succeeded.
type Kind int

const (
	// Usage is malformed CLI input, e.g. an out-of-range verbosity.
	Usage Kind = iota
	// Environment is a missing or non-executable collaborator binary.
	Environment
	// Resource is a channel-creation or spawn failure.
	Resource
	// Protocol is a bootstrap connection failure or zero outputs.
	Protocol
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage"
	case Environment:
		return "environment"
	case Resource:
		return "resource"
	case Protocol:
		return "protocol"
	}
	return "unknown"
}

// Error is a classified fatal launcher error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a classified error with fmt.Errorf semantics.
func Errorf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the classification of err, or ok=false for unclassified
// errors.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
