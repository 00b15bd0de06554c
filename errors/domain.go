package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidField matches every InvariantError via errors.Is.
var ErrInvalidField = errors.New("invalid field")

// InvariantError: ошибка field-level инварианта записи.
// Field is the input label ("firstName", "zip"), Code a stable reason code
// ("invalid_zip") and Reason the human-readable rule that was violated.
type InvariantError struct {
	Field  string
	Code   string
	Reason string
}

func (e InvariantError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e InvariantError) Is(target error) bool { return target == ErrInvalidField }

// InvalidField создаёт ошибку поля без машинного кода.
// Пример: "zip: must be 6-digit, non-zero leading digit"
func InvalidField(field, reason string) error {
	return InvariantError{Field: field, Code: "invalid", Reason: reason}
}

// InvalidFieldCode is InvalidField with an explicit reason code.
func InvalidFieldCode(field, code, reason string) error {
	if code == "" {
		code = "invalid"
	}
	return InvariantError{Field: field, Code: code, Reason: reason}
}

// IsInvariant проверяет является ли ошибка InvariantError.
func IsInvariant(err error) bool {
	var ie InvariantError
	return errors.As(err, &ie)
}

// AsInvariant unwraps err into an InvariantError.
func AsInvariant(err error) (InvariantError, bool) {
	var ie InvariantError
	if errors.As(err, &ie) {
		return ie, true
	}
	return InvariantError{}, false
}
