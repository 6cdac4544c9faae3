package notes

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can tell bad user input apart from
// environment problems.
type Kind int

const (
	// KindIO is a generic filesystem or process failure.
	KindIO Kind = iota
	// KindAlreadyExists means a note already occupies the target path.
	KindAlreadyExists
	// KindNotFound means the target note does not exist.
	KindNotFound
	// KindInvalidSelection means picker input was unparseable or out of range.
	KindInvalidSelection
	// KindMissingEditor means no editor is configured but one is required.
	KindMissingEditor
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already exists"
	case KindNotFound:
		return "not found"
	case KindInvalidSelection:
		return "invalid selection"
	case KindMissingEditor:
		return "missing editor"
	default:
		return "io failure"
	}
}

// UserError reports whether the kind stems from user input that can be fixed
// by reissuing the command differently.
func (k Kind) UserError() bool {
	switch k {
	case KindAlreadyExists, KindNotFound, KindInvalidSelection:
		return true
	}
	return false
}

// Sentinel errors for errors.Is comparisons. Every *Error matches the
// sentinel of its Kind.
var (
	ErrIO               = &Error{Kind: KindIO}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrInvalidSelection = &Error{Kind: KindInvalidSelection}
	ErrMissingEditor    = &Error{Kind: KindMissingEditor}
)

// Error is the error type returned by note operations.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "create", "delete", "select"
	Path string // note or directory path involved, if any
	Msg  string // optional human detail
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Op != "" {
		msg = e.Op + " " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, which makes the sentinels usable
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf classifies err. Errors that are not *Error report KindIO.
func KindOf(err error) Kind {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Kind
	}
	return KindIO
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}
