// Package apierr defines the JSON error surface of the API.
//
// Taxonomy:
//   - validation (missing/malformed field)        -> 400 with a field map
//   - authorization (role or ownership mismatch)  -> 403
//   - not-found (entity or required parent absent,
//     including malformed identifiers)            -> 404
//   - store/unexpected                            -> 500 generic message;
//     detail is surfaced only outside production
//
// Handlers receive a *Writer (constructed once at startup) rather than
// reaching for package-level state, so the expose-internal decision and the
// logger travel by dependency injection.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// Error is an API error with an HTTP status, a caller-facing message, and an
// optional per-field detail map for validation failures.
type Error struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// BadRequest builds a 400 error.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Validation builds a 400 from an ozzo-validation result. Field-level errors
// become the Fields map; any other error is treated as a plain bad request.
func Validation(err error) *Error {
	e := &Error{Status: http.StatusBadRequest, Message: "Validation error", cause: err}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		e.Fields = make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			e.Fields[field] = ferr.Error()
		}
		return e
	}
	e.Message = err.Error()
	return e
}

// NotFound builds a 404 error.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Forbidden builds a 403 error.
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// Unauthorized builds a 401 error.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Internal builds a 500 wrapping the underlying cause. The cause is logged
// by the Writer and only echoed to the caller outside production.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", cause: err}
}

// Writer renders API errors and success payloads as JSON.
type Writer struct {
	log            *zap.Logger
	exposeInternal bool
}

// NewWriter builds a Writer. exposeInternal controls whether 500 responses
// carry the underlying error text (enable outside production only).
func NewWriter(logger *zap.Logger, exposeInternal bool) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{log: logger, exposeInternal: exposeInternal}
}

// JSON writes v with the given status.
func (wr *Writer) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		wr.log.Warn("response encode failed", zap.Error(err))
	}
}

// Write coerces err to an *Error (anything unrecognized becomes a 500) and
// renders it. Server errors are logged with their cause.
func (wr *Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	if apiErr.Status >= http.StatusInternalServerError {
		wr.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		if wr.exposeInternal && apiErr.cause != nil {
			// Diagnostic detail for dev/test environments.
			apiErr = &Error{
				Status:  apiErr.Status,
				Message: apiErr.cause.Error(),
			}
		}
	}
	wr.JSON(w, apiErr.Status, apiErr)
}
