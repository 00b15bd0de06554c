package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Contact field rules. Each is a full-string match.
var (
	personNameRe   = regexp.MustCompile(`^[A-Z][A-Za-z]{2,}$`)
	postalCodeRe   = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	mobilePhoneRe  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	contactEmailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

const (
	TagPersonName   = "person_name"
	TagPostalCode   = "postal_code"
	TagMobilePhone  = "mobile_phone"
	TagContactEmail = "contact_email"
)

func registerContactRules(v *validator.Validate) {
	for tag, re := range map[string]*regexp.Regexp{
		TagPersonName:   personNameRe,
		TagPostalCode:   postalCodeRe,
		TagMobilePhone:  mobilePhoneRe,
		TagContactEmail: contactEmailRe,
	} {
		if err := v.RegisterValidation(tag, matchString(re)); err != nil {
			panic(fmt.Sprintf("validator: register %q: %v", tag, err))
		}
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
