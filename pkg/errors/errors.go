package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure into the closed set the workflow controller
// matches over. New kinds must be handled everywhere a Kind is switched on.
type Kind string

const (
	KindConfig       Kind = "config"
	KindAuth         Kind = "auth"
	KindConnectivity Kind = "connectivity"
	KindUploadFailed Kind = "upload_failed"
	KindValidation   Kind = "validation"
	KindUnknown      Kind = "unknown"
)

// Error represents a typed portal error carrying the i18n key used for
// user-facing display. Detail lives in Err and is for logs only.
type Error struct {
	Kind       Kind   `json:"kind"`
	Code       string `json:"code"`
	MessageKey string `json:"message_key"`
	Err        error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(kind Kind, code, messageKey string) *Error {
	return &Error{Kind: kind, Code: code, MessageKey: messageKey}
}

// Wrap attaches a cause to a predefined error without mutating it.
func Wrap(base *Error, err error) *Error {
	if base == nil {
		return &Error{Kind: KindUnknown, Code: "UNKNOWN", MessageKey: "error.uploadFailed", Err: err}
	}
	clone := *base
	clone.Err = err
	return &clone
}

// Predefined errors for every failure the transport and controller surface.
var (
	ErrMissingToken   = New(KindConfig, "CONFIG_MISSING_TOKEN", "error.configMissingToken")
	ErrMissingBaseURL = New(KindConfig, "CONFIG_MISSING_API_URL", "error.configMissingApiUrl")
	ErrAuthFailed     = New(KindAuth, "AUTH_FAILED", "error.authFailed")
	ErrNetwork        = New(KindConnectivity, "NETWORK", "error.network")
	ErrUploadFailed   = New(KindUploadFailed, "UPLOAD_FAILED", "error.uploadFailed")
)

// FromError normalises any error into an *Error. Errors that do not carry a
// kind collapse to KindUnknown so callers can still match exhaustively.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Code: "UNKNOWN", MessageKey: "error.uploadFailed", Err: err}
}

// KindOf reports the kind of err, KindUnknown for untyped errors.
func KindOf(err error) Kind {
	e := FromError(err)
	if e == nil {
		return KindUnknown
	}
	return e.Kind
}
