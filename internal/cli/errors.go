package cli

import (
	"errors"

	"github.com/aidanlsb/notation/internal/notes"
)

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrNoteExists       = "NOTE_EXISTS"
	ErrNoteNotFound     = "NOTE_NOT_FOUND"
	ErrInvalidSelection = "INVALID_SELECTION"
	ErrIO               = "IO_ERROR"
	ErrMissingEditor    = "MISSING_EDITOR"
	ErrInvalidInput     = "INVALID_INPUT"
)

// Warning codes for non-fatal issues.
const (
	WarnNothingDeleted = "NOTHING_DELETED"
)

func codeFor(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	var ne *notes.Error
	if !errors.As(err, &ne) {
		return ErrInvalidInput
	}
	switch ne.Kind {
	case notes.KindAlreadyExists:
		return ErrNoteExists
	case notes.KindNotFound:
		return ErrNoteNotFound
	case notes.KindInvalidSelection:
		return ErrInvalidSelection
	case notes.KindMissingEditor:
		return ErrMissingEditor
	default:
		return ErrIO
	}
}

func suggestionFor(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.suggestion
	}
	switch notes.KindOf(err) {
	case notes.KindAlreadyExists:
		return "A note already exists for this minute; edit it with 'notation edit <note>'"
	case notes.KindNotFound:
		return "Run 'notation list' to see existing notes"
	case notes.KindInvalidSelection:
		return "Type one of the listed numbers"
	case notes.KindMissingEditor:
		return "Pass --editor, set 'editor' in config.toml, or export $EDITOR"
	}
	return ""
}
