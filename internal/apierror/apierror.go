// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so clients always see the
// same `{error, message}` shape and internals (SQL text, stack traces) are
// never leaked.
package apierror

import "net/http"

// Error is the canonical error envelope. Status is the HTTP status to write;
// it is not serialized. Code is a stable machine-readable category.
type Error struct {
	Status  int               `json:"-"`
	Code    string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, code, msg string) *Error {
	return &Error{Status: status, Code: code, Message: msg}
}

// Validation covers missing/malformed request fields, detected before any
// database call.
func Validation(msg string) *Error {
	return New(http.StatusBadRequest, "validation", msg)
}

// ValidationFields carries a per-field tag map from the validator.
func ValidationFields(fields map[string]string) *Error {
	e := Validation("validasi gagal")
	e.Fields = fields
	return e
}

// NotFound signals zero rows matched the targeted identifier.
func NotFound(msg string) *Error {
	return New(http.StatusNotFound, "not_found", msg)
}

// Conflict signals a unique-constraint violation on create.
func Conflict(msg string) *Error {
	return New(http.StatusConflict, "conflict", msg)
}

// Referential signals a foreign-key violation (stock pointing at a product
// that does not exist).
func Referential(msg string) *Error {
	return New(http.StatusBadRequest, "invalid_reference", msg)
}

// Internal is the catch-all for database/connectivity failures. The
// underlying error text is kept in the message for diagnostics.
func Internal(msg string) *Error {
	return New(http.StatusInternalServerError, "internal", msg)
}
