package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSender  = errors.New("invalid sender")
	ErrInvalidMessage = errors.New("invalid message")

	ErrInvalidID      = errors.New("invalid work id")
	ErrInvalidLimit   = errors.New("invalid page limit")
	ErrEmptyIDs       = errors.New("favorites list cannot be empty")
	ErrTooManyIDs     = errors.New("too many favorites in one request")
	ErrInvalidContact = errors.New("stored contact does not match output schema")
)

// Client-facing messages of validation failures.
const (
	MsgInvalidSender = "Nieprawidłowa wartość pola nadawcy"
	MsgInvalidID     = "Nieprawidlowe ID ogloszenia"
	MsgInvalidLimit  = "Nieprawidlowy limit"
	MsgEmptyIDs      = "Lista ulubionych nie moze byc pusta"
	MsgTooManyIDs    = "Maksymalnie 100 elementow na zapytanie"
)

// MsgInvalidMessage returns the message-length failure text for the
// configured bounds.
func MsgInvalidMessage(minLen, maxLen int) string {
	return fmt.Sprintf("Wiadomość może mieć od %d do %d znaków", minLen, maxLen)
}

// FieldError is a validation failure of a single input field. Message is
// safe to return to the client; Err is the sentinel for errors.Is matching.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(field, message string, err error) *FieldError {
	return &FieldError{Field: field, Message: message, Err: err}
}
