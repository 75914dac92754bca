package crud

import "errors"

// ErrNotFound is returned when an identifier does not resolve to a stored
// document. Malformed identifiers map here too.
var ErrNotFound = errors.New("record not found")

// ValidationError wraps a model validation failure so the HTTP layer can map
// it to a 400 with the message surfaced verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
