package emvscope

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parsing and decoding errors.
type ErrorKind int

const (
	// Parse-layer kinds.
	ErrTruncatedTag ErrorKind = iota + 1
	ErrMalformedLength
	ErrTrailingData
	ErrUnknownFormat

	// Decode-layer kinds. These are reported per tag and never abort
	// decoding of sibling tags.
	ErrWrongLength
	ErrUnrecognised
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTruncatedTag:
		return "truncated tag"
	case ErrMalformedLength:
		return "malformed length"
	case ErrTrailingData:
		return "trailing data"
	case ErrUnknownFormat:
		return "could not determine format"
	case ErrWrongLength:
		return "wrong byte count"
	case ErrUnrecognised:
		return "unrecognised value"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Error carries byte offset and classification for better diagnostics.
type Error struct {
	Offset int
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Offset > 0 {
		return fmt.Sprintf("emvscope: %v at %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("emvscope: %v: %s", e.Kind, e.Detail)
}

// IsKind reports whether err is an *Error with the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
