package ntsf

import (
	"errors"
	"fmt"
	"runtime"
)

// Kind identifies which of the codec's closed set of failure conditions an
// Error represents. Callers that need to branch on the failure type should
// use errors.Is against the package-level sentinels below rather than
// inspecting Kind directly.
type Kind int

const (
	KindIo Kind = iota
	KindTruncated
	KindMalformed
	KindBadAddress
	KindNonAscii
	KindOverflowChildren
	KindLabelTooLong
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindIo:
		return "io"
	case KindTruncated:
		return "truncated"
	case KindMalformed:
		return "malformed"
	case KindBadAddress:
		return "bad address"
	case KindNonAscii:
		return "non-ascii"
	case KindOverflowChildren:
		return "overflow children"
	case KindLabelTooLong:
		return "label too long"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Error is the wrapper type for errors specific to this codec. It carries a
// Kind so callers can test with errors.Is/errors.As, plus a free-form detail
// string and an optional wrapped cause.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "ntsf: " + e.Kind.String()
	}
	return fmt.Sprintf("ntsf: %s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, ErrTruncated) works against a wrapped *Error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Detail == ""
}

var (
	ErrIo               error = &Error{Kind: KindIo}
	ErrTruncated        error = &Error{Kind: KindTruncated}
	ErrMalformed        error = &Error{Kind: KindMalformed}
	ErrBadAddress       error = &Error{Kind: KindBadAddress}
	ErrNonAscii         error = &Error{Kind: KindNonAscii}
	ErrOverflowChildren error = &Error{Kind: KindOverflowChildren}
	ErrLabelTooLong     error = &Error{Kind: KindLabelTooLong}
	ErrEmpty            error = &Error{Kind: KindEmpty}
)

func fail(kind Kind, format string, a ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

func failCause(kind Kind, cause error, format string, a ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, a...), Cause: cause}
}

// throw panics with a *Error so that the tight per-byte decode loops in
// block.go and reconstruct.go can signal failure without threading an error
// return through every helper call. Exported entry points recover it with
// errRecover.
func throw(kind Kind, format string, a ...any) {
	panic(fail(kind, format, a...))
}

func throwCause(kind Kind, cause error, format string, a ...any) {
	panic(failCause(kind, cause, format, a...))
}

// errRecover is deferred by every exported Serialize/Deserialize entry
// point. A *Error panic, or a panic with any other non-runtime error
// value, is converted into a normal error return; a runtime.Error (meaning
// a real bug) or a non-error panic value is re-raised so it is never
// silently swallowed.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *Error:
		*err = ex
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// asNtsfError unwraps err down to the first *Error in its chain, if any.
func asNtsfError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
