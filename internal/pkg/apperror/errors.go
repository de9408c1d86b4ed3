package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated       Kind = "UNAUTHENTICATED"
	KindInvalidCredential     Kind = "INVALID_CREDENTIAL"
	KindAdminRequired         Kind = "ADMIN_REQUIRED"
	KindNotFound              Kind = "NOT_FOUND"
	KindSessionNotFound       Kind = "SESSION_NOT_FOUND"
	KindInvalidRequest        Kind = "INVALID_REQUEST"
	KindInvalidCategory       Kind = "INVALID_CATEGORY"
	KindDuplicateName         Kind = "DUPLICATE_NAME"
	KindDuplicateEmail        Kind = "DUPLICATE_EMAIL"
	KindTooManyAttempts       Kind = "TOO_MANY_ATTEMPTS"
	KindCompletionUnavailable Kind = "COMPLETION_UNAVAILABLE"
	KindMalformedCompletion   Kind = "MALFORMED_COMPLETION"
	KindServerError           Kind = "SERVER_ERROR"
)

var statusByKind = map[Kind]int{
	KindUnauthenticated:       http.StatusUnauthorized,
	KindInvalidCredential:     http.StatusUnauthorized,
	KindAdminRequired:         http.StatusForbidden,
	KindNotFound:              http.StatusNotFound,
	KindSessionNotFound:       http.StatusNotFound,
	KindInvalidRequest:        http.StatusBadRequest,
	KindInvalidCategory:       http.StatusBadRequest,
	KindDuplicateEmail:        http.StatusBadRequest,
	KindDuplicateName:         http.StatusConflict,
	KindTooManyAttempts:       http.StatusTooManyRequests,
	KindMalformedCompletion:   http.StatusBadGateway,
	KindCompletionUnavailable: http.StatusServiceUnavailable,
	KindServerError:           http.StatusInternalServerError,
}

// Error is the application error carried from services up to the HTTP layer.
// Message is safe to show to clients; Err is kept for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind onto an HTTP status code.
func (e *Error) Status() int {
	if status, ok := statusByKind[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func InvalidCredential(message string) *Error {
	return New(KindInvalidCredential, message)
}

func AdminRequired() *Error {
	return New(KindAdminRequired, "Admin access required")
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func SessionNotFound() *Error {
	return New(KindSessionNotFound, "Session not found")
}

func InvalidRequest(message string) *Error {
	return New(KindInvalidRequest, message)
}

func InvalidCategory() *Error {
	return New(KindInvalidCategory, "Invalid conversationCategoryId")
}

func DuplicateName(name string) *Error {
	return New(KindDuplicateName, fmt.Sprintf("category %q already exists", name))
}

func DuplicateEmail() *Error {
	return New(KindDuplicateEmail, "Email already registered")
}

func TooManyAttempts() *Error {
	return New(KindTooManyAttempts, "Too many login attempts, try again later")
}

func CompletionUnavailable(err error) *Error {
	return Wrap(KindCompletionUnavailable, "Completion service unavailable", err)
}

func MalformedCompletion(err error) *Error {
	return Wrap(KindMalformedCompletion, "Failed to parse completion response", err)
}

func Server(message string, err error) *Error {
	return Wrap(KindServerError, message, err)
}

// KindOf returns the kind of the first *Error in err's chain, or KindServerError.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServerError
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
