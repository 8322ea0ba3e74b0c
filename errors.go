package jahis

import (
	"errors"
	"fmt"
)

// Kind discriminates the failure kinds raised uniformly by every parser
// in this package. It is the single tagged error type described by the
// record and block layers.
type Kind int

const (
	// InvalidArgument indicates a value-domain parse failed: a bad era
	// letter, an unknown prefecture alias, an out-of-range code, etc.
	InvalidArgument Kind = iota
	// InvalidRecordLine indicates a single line failed its schema regex
	// or its tag did not match the record kind being parsed.
	InvalidRecordLine
	// GotUnexpectedRecordLine indicates a block parser received a line
	// that is valid in isolation but forbidden at this point: wrong
	// section, a repeated singleton, and so on.
	GotUnexpectedRecordLine
	// MissingRequiredRecord indicates a block parser finished without a
	// required sub-record.
	MissingRequiredRecord
	// Unreachable indicates a logic-assertion failure that should never
	// be observed in a correct build.
	Unreachable
	// ParseIntError wraps an underlying integer parse failure.
	ParseIntError
	// ParseFloatError wraps an underlying float parse failure.
	ParseFloatError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidRecordLine:
		return "InvalidRecordLine"
	case GotUnexpectedRecordLine:
		return "GotUnexpectedRecordLine"
	case MissingRequiredRecord:
		return "MissingRequiredRecord"
	case Unreachable:
		return "Unreachable"
	case ParseIntError:
		return "ParseIntError"
	case ParseFloatError:
		return "ParseFloatError"
	default:
		return "Unknown"
	}
}

// Error is the sum-type error used throughout this package. Every parse
// failure anywhere in the Value Domain, Record or Block layers surfaces
// as an *Error; callers discriminate on Kind.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// errInvalidArgument builds an InvalidArgument error quoting the offending
// value, matching the "human-readable, quotes the offending line or
// value" requirement.
func errInvalidArgument(what, value string) *Error {
	return newError(InvalidArgument, "invalid %s: %q", what, value)
}

func errInvalidRecordLine(tag, line string) *Error {
	return newError(InvalidRecordLine, "line does not match schema for record %s: %q", tag, line)
}

func errUnexpected(line, reason string) *Error {
	return newError(GotUnexpectedRecordLine, "unexpected record line (%s): %q", reason, line)
}

func errMissingRequired(what string) *Error {
	return newError(MissingRequiredRecord, "missing required record: %s", what)
}

func errUnreachable(format string, args ...any) *Error {
	return newError(Unreachable, format, args...)
}

// IsKind reports whether err is, or wraps, an *Error of the given kind,
// so callers can write `IsKind(err, jahis.MissingRequiredRecord)`.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
