package validator

var tagMap = map[string]string{
	"required":      "required",
	"omitempty":     "optional",
	"email":         "invalid_email",
	"e164":          "invalid_phone",
	"max":           "too_long",
	"min":           "too_short",
	"len":           "invalid_length",
	"oneof":         "invalid_choice",
	"alpha":         "only_letters_allowed",
	"alphanum":      "only_letters_and_digits_allowed",
	"numeric":       "only_numbers_allowed",
	TagPersonName:   "invalid_name",
	TagPostalCode:   "invalid_zip",
	TagMobilePhone:  "invalid_phone",
	TagContactEmail: "invalid_email",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
