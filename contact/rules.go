package contact

import (
	"fmt"

	"github.com/vortex-fintech/go-addressbook/validator"
)

// Input labels used in validation errors and change lists.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldState     = "state"
	FieldZip       = "zip"
	FieldPhone     = "phone"
	FieldEmail     = "email"
)

// Minimum rune lengths for free-text fields. State allows two-letter region codes ("MP").
const (
	MinAddressLen = 4
	MinCityLen    = 4
	MinStateLen   = 2
)

const (
	reasonName  = "must start with capital letter and have ≥3 characters"
	reasonZip   = "must be 6-digit, non-zero leading digit"
	reasonPhone = "must be valid 10-digit number"
	reasonEmail = "invalid format"
)

// ValidateName checks that v starts with an uppercase letter, is alphabetic and
// has at least three characters.
func ValidateName(field, v string) (string, error) {
	if err := validator.Var(field, v, validator.TagPersonName, reasonName); err != nil {
		return "", err
	}
	return v, nil
}

// ValidateMinLength checks that v has at least n characters.
func ValidateMinLength(field, v string, n int) (string, error) {
	tag := fmt.Sprintf("min=%d", n)
	reason := fmt.Sprintf("must have at least %d characters", n)
	if err := validator.Var(field, v, tag, reason); err != nil {
		return "", err
	}
	return v, nil
}

// ValidateZip checks for six digits with a non-zero leading digit.
func ValidateZip(v string) (string, error) {
	if err := validator.Var(FieldZip, v, validator.TagPostalCode, reasonZip); err != nil {
		return "", err
	}
	return v, nil
}

// ValidatePhone checks for ten digits starting with 6, 7, 8 or 9.
func ValidatePhone(v string) (string, error) {
	if err := validator.Var(FieldPhone, v, validator.TagMobilePhone, reasonPhone); err != nil {
		return "", err
	}
	return v, nil
}

// ValidateEmail checks for local@domain.tld with an alphabetic TLD of two or more letters.
func ValidateEmail(v string) (string, error) {
	if err := validator.Var(FieldEmail, v, validator.TagContactEmail, reasonEmail); err != nil {
		return "", err
	}
	return v, nil
}

// rule binds a field label to its validator.
type rule struct {
	field string
	check func(string) (string, error)
}

// rules lists every field in validation order.
var rules = [...]rule{
	{FieldFirstName, func(v string) (string, error) { return ValidateName(FieldFirstName, v) }},
	{FieldLastName, func(v string) (string, error) { return ValidateName(FieldLastName, v) }},
	{FieldAddress, func(v string) (string, error) { return ValidateMinLength(FieldAddress, v, MinAddressLen) }},
	{FieldCity, func(v string) (string, error) { return ValidateMinLength(FieldCity, v, MinCityLen) }},
	{FieldState, func(v string) (string, error) { return ValidateMinLength(FieldState, v, MinStateLen) }},
	{FieldZip, ValidateZip},
	{FieldPhone, ValidatePhone},
	{FieldEmail, ValidateEmail},
}
