package httperr

import "errors"

type Kind string

const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
)

// BusinessError is a domain rule failure the handler boundary turns into a
// structured 400 response, as opposed to a transport error which becomes 500.
type BusinessError struct {
	Kind    Kind
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func Validation(message string) error {
	return BusinessError{Kind: KindValidation, Message: message}
}

func Conflict(message string) error {
	return BusinessError{Kind: KindConflict, Message: message}
}

func RecordNotFound(message string) error {
	return BusinessError{Kind: KindNotFound, Message: message}
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
