package apperr

import (
	"errors"
	"net/http"
)

// Error is a failure that maps directly to an HTTP status and a plain-text
// message. Messages are kept byte-for-byte compatible with the legacy service,
// misspellings included.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidInput      = &Error{Status: http.StatusMethodNotAllowed, Message: "Invalid input"}
	ErrDuplicateID       = &Error{Status: http.StatusMethodNotAllowed, Message: "Envelope ID already exists"}
	ErrDuplicateName     = &Error{Status: http.StatusMethodNotAllowed, Message: "Envelope name already exists"}
	ErrNegativeAmount    = &Error{Status: http.StatusMethodNotAllowed, Message: "Negative amount"}
	ErrNotEmpty          = &Error{Status: http.StatusMethodNotAllowed, Message: "Envelope not empty"}
	ErrInsufficientFunds = &Error{Status: http.StatusMethodNotAllowed, Message: "Incufficient funds"}
	ErrUseUpdate         = &Error{Status: http.StatusBadRequest, Message: `Use PUT "/envelopes/{envelopeID}" for updating`}
	ErrUnexpected        = &Error{Status: http.StatusInternalServerError, Message: "Something unexpected went wrong"}
)

// Translate maps any error to a status code and user-facing message.
// Unclassified errors fall through to a generic 500.
func Translate(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Message
	}
	return ErrUnexpected.Status, ErrUnexpected.Message
}
