package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure so controllers can map it to an HTTP
// status without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindAuthorization
	KindInvalidState
	KindDuplicateInvite
	KindExternalProvider
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindInvalidState:
		return "invalid_state_transition"
	case KindDuplicateInvite:
		return "duplicate_invite"
	case KindExternalProvider:
		return "external_provider"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the failure type returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func DuplicateInvite(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicateInvite, Message: fmt.Sprintf(format, args...)}
}

func ExternalProvider(message string, err error) *Error {
	return &Error{Kind: KindExternalProvider, Message: message, Err: err}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf extracts the Kind from err, or KindPersistence when err is not an
// *Error (unclassified failures are treated as storage-level).
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindPersistence
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
