package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat      ErrKind = iota // malformed file content (line too long, bad tag)
	ErrKindNotFound                   // missing section/key/file
	ErrKindInvalid                    // bad argument (empty or reserved names)
	ErrKindState                      // operation not valid in the current state
	ErrKindIO                         // underlying read/write failure
	ErrKindUnsupported                // recognized but unsupported input
)

// String implements fmt.Stringer.
func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindInvalid:
		return "invalid"
	case ErrKindState:
		return "state"
	case ErrKindIO:
		return "io"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the config store.
var (
	// ErrNotFound indicates a missing section, key or file.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrEmptyName indicates an empty section, key or file name.
	ErrEmptyName = &Error{Kind: ErrKindInvalid, Msg: "empty name"}
	// ErrInvalidName indicates a name containing a reserved character.
	ErrInvalidName = &Error{Kind: ErrKindInvalid, Msg: "invalid name"}
	// ErrSectionExists indicates a rename target that is already in use.
	ErrSectionExists = &Error{Kind: ErrKindInvalid, Msg: "section already exists"}
	// ErrNoSection indicates a value access without a current section.
	ErrNoSection = &Error{Kind: ErrKindState, Msg: "no current section"}
	// ErrStackEmpty indicates a pop on an empty section stack.
	ErrStackEmpty = &Error{Kind: ErrKindState, Msg: "section stack is empty"}
	// ErrProtected indicates an unbalanced protect/unprotect call.
	ErrProtected = &Error{Kind: ErrKindState, Msg: "unbalanced section protection"}
	// ErrNoKey indicates encryption was requested without a key.
	ErrNoKey = &Error{Kind: ErrKindState, Msg: "no encryption key"}
	// ErrHistoryDisabled indicates a history reload without history tracking.
	ErrHistoryDisabled = &Error{Kind: ErrKindState, Msg: "history is not enabled"}
	// ErrNotReady indicates use of a store that was not initialized.
	ErrNotReady = &Error{Kind: ErrKindState, Msg: "store is not initialized"}
	// ErrLineTooLong indicates a line that does not fit the scanner buffer.
	ErrLineTooLong = &Error{Kind: ErrKindFormat, Msg: "line exceeds buffer size"}
)

// KindOf returns the kind of the first *Error in err's chain.
// ok is false when the chain holds no typed error.
func KindOf(err error) (kind ErrKind, ok bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

// Wrap returns a new error of the same kind as sentinel, prefixed with msg.
// errors.Is(result, sentinel) holds.
func Wrap(sentinel *Error, msg string) error {
	return &Error{Kind: sentinel.Kind, Msg: msg, Err: sentinel}
}

// -----------------------------------------------------------------------------
// Value Types
// -----------------------------------------------------------------------------

// Vector is a three component value, written as (x, y, z) or {x, y, z}.
type Vector struct {
	X, Y, Z float64
}

// String formats the vector the way it is written in config files.
func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// SaveFilter selects what a save writes. It is called once per section with
// an empty key, and once per entry of every accepted section.
type SaveFilter func(section, key string, useEncryption bool) bool
