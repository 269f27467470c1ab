package apperr

import "errors"

// Kind classifies an engine error. Every error the use cases return carries
// exactly one kind so callers can map it to a transport status without
// string matching.
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindQuotaExceeded  Kind = "quota_exceeded"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string

	// Set only on quota errors: the caller must surface a plan-upgrade
	// signal, not a generic validation failure.
	UpgradeRequired bool
}

func (e *Error) Error() string {
	return e.Code
}

func Authentication(code, message string) *Error {
	return &Error{Kind: KindAuthentication, Code: code, Message: message}
}

func Authorization(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func QuotaExceeded(code, message string) *Error {
	return &Error{Kind: KindQuotaExceeded, Code: code, Message: message, UpgradeRequired: true}
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}
