package apperr

import (
  "errors"
  "fmt"
  "net/http"
)

// Error carries an HTTP-style status alongside the message so handlers can
// mirror it straight into the response envelope.
type Error struct {
  Status  int
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

func Validation(msg string) *Error {
  return &Error{Status: http.StatusBadRequest, Message: msg}
}

func NotFound(msg string) *Error {
  return &Error{Status: http.StatusNotFound, Message: msg}
}

// Upstream marks a failed or empty reply from an external collaborator
// (completion client, weather, retail lookup).
func Upstream(msg string, err error) *Error {
  return &Error{Status: http.StatusBadGateway, Message: msg, Err: err}
}

// Parse marks a model reply that was supposed to be structured but was not.
// The offending text travels in the wrapped error for diagnosis.
func Parse(msg string, raw string, err error) *Error {
  return &Error{Status: http.StatusInternalServerError, Message: msg, Err: fmt.Errorf("%w; raw reply: %s", err, raw)}
}

func Internal(msg string, err error) *Error {
  return &Error{Status: http.StatusInternalServerError, Message: msg, Err: err}
}

// StatusOf resolves the HTTP status for any error, defaulting to 500.
func StatusOf(err error) int {
  var ae *Error
  if errors.As(err, &ae) {
    return ae.Status
  }
  return http.StatusInternalServerError
}

// MessageOf resolves the user-facing message for any error.
func MessageOf(err error) string {
  var ae *Error
  if errors.As(err, &ae) {
    return ae.Message
  }
  return "Internal Server Error"
}

// CauseOf resolves the underlying diagnostic text (for Parse errors this
// includes the raw offending reply). Empty when the error carries no cause.
func CauseOf(err error) string {
  var ae *Error
  if errors.As(err, &ae) {
    if ae.Err != nil {
      return ae.Err.Error()
    }
    return ""
  }
  if err != nil {
    return err.Error()
  }
  return ""
}
