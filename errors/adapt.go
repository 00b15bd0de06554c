package errors

import "errors"

// ToErrorResponse converts any error into ErrorResponse.
// Supported inputs:
// - ErrorResponse / *ErrorResponse (direct passthrough)
// - InvariantError (InvalidField / InvalidFieldCode)
func ToErrorResponse(err error) ErrorResponse {
	if err == nil {
		return Internal().WithReason("unexpected_error")
	}

	if e, ok := err.(ErrorResponse); ok {
		return e
	}

	var ep *ErrorResponse
	if errors.As(err, &ep) && ep != nil {
		return *ep
	}

	ie, ok := AsInvariant(err)
	if !ok {
		return Internal().WithReason("unexpected_error")
	}
	if ie.Field == "" {
		return InvalidArgument().WithReason(ie.Code).WithMessage(ie.Reason)
	}

	return ValidationViolations([]FieldViolation{{
		Field:       ie.Field,
		Reason:      ie.Code,
		Description: ie.Reason,
	}}).WithDetail(ie.Field, ie.Code)
}
