package id3v2

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the errors returned by this package.
type Kind uint8

const (
	// KindIO means the underlying reader failed or hit an unexpected
	// EOF while reading a required number of bytes.
	KindIO Kind = iota
	// KindInt means a width-narrowing integer conversion failed. This
	// should not arise from a conformant tag; it is kept as a defense
	// against arithmetic that would otherwise panic or wrap silently.
	KindInt
	// KindInvalidField means a header or extended-header field did not
	// have the shape the format requires. See Error.Field for which.
	KindInvalidField
	// KindInvalidVersion means a v1.x value was routed through a v2.x
	// decode path.
	KindInvalidVersion
	// KindInvalidFrameID means a frame identifier contained bytes
	// outside A-Z0-9.
	KindInvalidFrameID
	// KindInvalidBitFlag means two frame flags that are required to
	// appear together did not (for example v2.4 COMPRESSION without
	// DATA_LENGTH_INDICATOR).
	KindInvalidBitFlag
	// KindInvalidFrameData means a frame's body bytes did not conform
	// to its type's shape (an enum byte out of range, a malformed text
	// encoding, a non-digit date, and so on).
	KindInvalidFrameData
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindInt:
		return "int"
	case KindInvalidField:
		return "invalid field"
	case KindInvalidVersion:
		return "invalid version"
	case KindInvalidFrameID:
		return "invalid frame id"
	case KindInvalidBitFlag:
		return "invalid bit flag"
	case KindInvalidFrameData:
		return "invalid frame data"
	default:
		return "unknown"
	}
}

// Field identifies the specific header or extended-header field that
// failed to decode, for errors of KindInvalidField.
type Field uint8

const (
	FieldNone Field = iota
	FieldIdentifier
	FieldVersion
	FieldSize
	FieldExtSize
	FieldExtFlagSize
	FieldExtFlagData
	FieldHeaderFlags
)

func (f Field) String() string {
	switch f {
	case FieldIdentifier:
		return "identifier"
	case FieldVersion:
		return "version"
	case FieldSize:
		return "size"
	case FieldExtSize:
		return "ext size"
	case FieldExtFlagSize:
		return "ext flag size"
	case FieldExtFlagData:
		return "ext flag data"
	case FieldHeaderFlags:
		return "header flags"
	default:
		return "none"
	}
}

// Error is the error type returned throughout this package. It carries
// a Kind so callers can branch on the class of failure without string
// matching, and optionally the specific Field that was invalid and/or
// a wrapped underlying Cause.
type Error struct {
	Kind  Kind
	Field Field
	Cause error
}

func (e *Error) Error() string {
	if e.Field != FieldNone {
		if e.Cause != nil {
			return fmt.Sprintf("id3v2: %s (%s): %v", e.Kind, e.Field, e.Cause)
		}
		return fmt.Sprintf("id3v2: %s (%s)", e.Kind, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("id3v2: %s: %v", e.Kind, e.Cause)
	}
	return fmt.Sprintf("id3v2: %s", e.Kind)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

func newError(kind Kind) *Error {
	return &Error{Kind: kind}
}

func newFieldError(kind Kind, field Field) *Error {
	return &Error{Kind: kind, Field: field}
}

func wrapError(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, Cause: errors.Wrap(cause, msg)}
}

// These mirror the most common constructions above as values, for
// callers that want to errors.Is against a single sentinel kind
// regardless of the message attached.
var (
	ErrInvalidFrameID = newError(KindInvalidFrameID)
)

// Is allows errors.Is(err, ErrInvalidFrameID) and similar to match any
// *Error sharing the same Kind, independent of Field/Cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
