package command

import (
	"errors"
	"fmt"

	"attache/internal/book"
)

// Kind classifies a command failure.
type Kind string

const (
	KindValidation      Kind = "validation"       // bad phone or date format
	KindNotFound        Kind = "not_found"        // name absent, or required sub-field missing
	KindDuplicate       Kind = "duplicate"        // name already present on add
	KindMissingArgument Kind = "missing_argument" // wrong number of arguments
	KindNoPhone         Kind = "no_phone"         // record exists but has no phones
	KindUnknown         Kind = "unknown"          // unrecognized command word
)

// Error is the tagged failure every command reports through. Message is
// ready for display; the wrapped cause, when present, keeps the typed
// detail reachable via errors.As.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// errNotFound is the shared lookup failure for commands requiring an
// existing contact.
func errNotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Contact not found."}
}

// wrap converts a book-layer error into a tagged command Error.
func wrap(err error) *Error {
	var ve *book.ValidationError
	if errors.As(err, &ve) {
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("Invalid %s format.", ve.Kind),
			cause:   err,
		}
	}
	if errors.Is(err, book.ErrNoPhone) {
		return &Error{Kind: KindNoPhone, Message: "No phone on record.", cause: err}
	}
	var lde *book.LeapDayError
	if errors.As(err, &lde) {
		return &Error{
			Kind:    KindValidation,
			Message: fmt.Sprintf("A February 29 birthday has no date in %d.", lde.Year),
			cause:   err,
		}
	}
	return &Error{Kind: KindValidation, Message: err.Error(), cause: err}
}
